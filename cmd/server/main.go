package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lavoura/config"
	"lavoura/database"
	"lavoura/router"

	"lavoura/pkg/ai"

	authCtrlImp "lavoura/pkg/auth/controllerImp"
	healthCtrlImp "lavoura/pkg/health/controllerImp"

	cropCtrlImp "lavoura/pkg/crop/controllerImp"
	cropRepoImp "lavoura/pkg/crop/repositoryImp"
	cropSvcImp "lavoura/pkg/crop/serviceImp"

	wizardCtrlImp "lavoura/pkg/wizard/controllerImp"
	wizardSvcImp "lavoura/pkg/wizard/serviceImp"

	harvestCtrlImp "lavoura/pkg/harvest/controllerImp"
	harvestRepoImp "lavoura/pkg/harvest/repositoryImp"
	harvestSvcImp "lavoura/pkg/harvest/serviceImp"

	timelineCtrlImp "lavoura/pkg/timeline/controllerImp"
	timelineSvcImp "lavoura/pkg/timeline/serviceImp"

	assistantCtrlImp "lavoura/pkg/assistant/controllerImp"
	assistantRepoImp "lavoura/pkg/assistant/repositoryImp"
	assistantSvcImp "lavoura/pkg/assistant/serviceImp"

	kbCtrlImp "lavoura/pkg/kb/controllerImp"
	kbEmbedder "lavoura/pkg/kb/embedder"
	kbRepoImp "lavoura/pkg/kb/repositoryImp"
	kbSvcImp "lavoura/pkg/kb/serviceImp"

	"lavoura/pkg/market"
	marketCtrlImp "lavoura/pkg/market/controllerImp"

	"lavoura/pkg/weather"
	weatherCtrlImp "lavoura/pkg/weather/controllerImp"

	"lavoura/pkg/summary"
	summaryCtrlImp "lavoura/pkg/summary/controllerImp"

	reportCtrlImp "lavoura/pkg/report/controllerImp"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)
	if cfg.LegacyStorePath != "" {
		n := database.ImportLegacyStore(db, cfg.LegacyStorePath)
		if n > 0 {
			log.Info().Int("crops", n).Str("path", cfg.LegacyStorePath).Msg("legacy store imported")
		}
	}

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Warn().Msg("no LLM credentials, using mock planner")
		llm = ai.NewMock()
	}

	// 5) KB wiring
	var emb *kbEmbedder.Client
	if cfg.EmbEndpoint != "" {
		emb = kbEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	}
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo, emb)
	kbCtrl := kbCtrlImp.New(kbSvc)

	// 6) Repos/Services/Controllers
	cropRepo := cropRepoImp.New(db)
	cropSvc := cropSvcImp.New(cropRepo)
	cropCtrl := cropCtrlImp.New(cropSvc)

	wizardSvc := wizardSvcImp.New(llm, cropSvc)
	wizardCtrl := wizardCtrlImp.New(wizardSvc)

	harvestRepo := harvestRepoImp.New(db)
	harvestSvc := harvestSvcImp.New(harvestRepo)
	harvestCtrl := harvestCtrlImp.New(harvestSvc, cropRepo)

	timelineSvc := timelineSvcImp.New(cropRepo)
	timelineCtrl := timelineCtrlImp.New(timelineSvc)

	msgRepo := assistantRepoImp.New(db)
	assistantSvc := assistantSvcImp.New(msgRepo, cropRepo, llm, kbSvc)
	assistantCtrl := assistantCtrlImp.New(assistantSvc)

	marketSvc := market.New(cfg.CurrencyFeedURL)
	marketCtrl := marketCtrlImp.New(marketSvc)

	weatherSvc := weather.New(cfg.WeatherEndpoint, cfg.DefaultLat, cfg.DefaultLng)
	weatherCtrl := weatherCtrlImp.New(weatherSvc, cropRepo)

	summarySvc := summary.New(cropRepo, harvestRepo, marketSvc, weatherSvc)
	summaryCtrl := summaryCtrlImp.New(summarySvc)

	reportCtrl := reportCtrlImp.New(cropRepo, harvestRepo)

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(
		e,
		cfg.EnableHeaderAuth,
		cropCtrl,
		wizardCtrl,
		harvestCtrl,
		timelineCtrl,
		assistantCtrl,
		summaryCtrl,
		marketCtrl,
		weatherCtrl,
		reportCtrl,
		kbCtrl,
		authCtrl,
		hCtrl,
	)

	// 8) Start
	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
