package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	// AI planning/chat (OpenAI-compatible). Empty endpoint → mock client.
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	// Embeddings for the knowledge base.
	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	// External data feeds.
	CurrencyFeedURL string
	WeatherEndpoint string

	// Default map center (Brazilian cerrado) used when a plot has no coordinates.
	DefaultLat float64
	DefaultLng float64

	// Legacy flat-file crop list imported on startup if present.
	LegacyStorePath string

	EnableHeaderAuth bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getF := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		Timezone:         get("TZ", "America/Sao_Paulo"),
		DBPath:           get("DB_PATH", "lavoura.db"),
		LLMEndpoint:      get("LLM_ENDPOINT", ""),
		LLMAPIKey:        get("LLM_API_KEY", ""),
		LLMModel:         get("LLM_MODEL", "gpt-4o-mini"),
		EmbEndpoint:      get("EMB_ENDPOINT", ""),
		EmbAPIKey:        get("EMB_API_KEY", ""),
		EmbModel:         get("EMB_MODEL", "text-embedding-3-small"),
		CurrencyFeedURL:  get("CURRENCY_FEED_URL", "https://economia.awesomeapi.com.br/json/last/USD-BRL"),
		WeatherEndpoint:  get("WEATHER_ENDPOINT", "https://api.open-meteo.com/v1/forecast"),
		DefaultLat:       getF("DEFAULT_LAT", -15.79),
		DefaultLng:       getF("DEFAULT_LNG", -47.88),
		LegacyStorePath:  get("LEGACY_STORE_PATH", ""),
		EnableHeaderAuth: get("ENABLE_HEADER_AUTH", "false") == "true",
	}
	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Bool("llm", cfg.LLMEndpoint != "").Msg("config loaded")
	return cfg
}
