// Package weather wraps the forecast provider and normalizes its response.
// Failures degrade to a "signal unavailable" snapshot instead of an error so
// the consuming view can always render.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type Snapshot struct {
	TempC        float64 `json:"temp_c"`
	Condition    string  `json:"condition"`
	HumidityPct  float64 `json:"humidity_pct"`
	WindKmH      float64 `json:"wind_kmh"`
	LocationName string  `json:"location_name"`
	IsDay        bool    `json:"is_day"`
	Degraded     bool    `json:"degraded,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

// conditionFor maps WMO weather codes to display strings.
func conditionFor(code int) string {
	switch {
	case code == 0:
		return "Céu limpo"
	case code <= 3:
		return "Parcialmente nublado"
	case code == 45 || code == 48:
		return "Neblina"
	case code >= 51 && code <= 57:
		return "Garoa"
	case code >= 61 && code <= 67:
		return "Chuva"
	case code >= 71 && code <= 77:
		return "Neve"
	case code >= 80 && code <= 82:
		return "Pancadas de chuva"
	case code >= 95:
		return "Tempestade"
	}
	return "Indefinido"
}

type Service struct {
	endpoint   string
	httpc      *http.Client
	defaultLat float64
	defaultLng float64
}

func New(endpoint string, defaultLat, defaultLng float64) *Service {
	return &Service{
		endpoint:   endpoint,
		httpc:      &http.Client{Timeout: 10 * time.Second},
		defaultLat: defaultLat,
		defaultLng: defaultLng,
	}
}

// DefaultCenter is the fixed fallback location (Brazilian cerrado by config).
func (s *Service) DefaultCenter() (float64, float64) { return s.defaultLat, s.defaultLng }

// Current fetches the snapshot for the given coordinates; nil coordinates
// fall back to the default center.
func (s *Service) Current(lat, lng *float64) Snapshot {
	la, ln := s.defaultLat, s.defaultLng
	name := "Localização padrão"
	if lat != nil && lng != nil {
		la, ln = *lat, *lng
		name = fmt.Sprintf("%.3f, %.3f", la, ln)
	}
	fail := func(reason string) Snapshot {
		log.Warn().Str("reason", reason).Msg("weather fetch failed")
		return Snapshot{Condition: "Sinal indisponível", LocationName: name, Degraded: true, Reason: reason}
	}
	if s.endpoint == "" {
		return fail("no endpoint configured")
	}

	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,is_day",
		s.endpoint, la, ln)
	resp, err := s.httpc.Get(url)
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()

	var out struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
			IsDay       int     `json:"is_day"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fail("parse response: " + err.Error())
	}
	return Snapshot{
		TempC:        out.Current.Temperature,
		Condition:    conditionFor(out.Current.WeatherCode),
		HumidityPct:  out.Current.Humidity,
		WindKmH:      out.Current.WindSpeed,
		LocationName: name,
		IsDay:        out.Current.IsDay == 1,
	}
}
