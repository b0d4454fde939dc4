// Package diagnostics reports the resolved API configuration and probes the
// liveness of the tools backend.
package diagnostics

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/internal/utils"
	"github.com/rs/zerolog"
)

// Report is the result of CheckAPIConfig.
type Report struct {
	BaseURL     string `json:"baseURL"`
	IsValid     bool   `json:"isValid"`
	Environment string `json:"environment"`
}

// CheckAPIConfig logs the resolved API configuration together with the raw
// inputs it was derived from and returns a summary. IsValid is true whenever
// the base URL is non-empty.
func CheckAPIConfig(cfg config.APIConfig, log *logger.Logger) Report {
	if log == nil {
		log = logger.Nop()
	}

	log.Info().
		Str("environment", cfg.Environment()).
		Str("base_url", cfg.BaseURL).
		Str("app_title", cfg.AppTitle).
		Dict("env", zerolog.Dict().
			Str("API_BASE_URL", cfg.BaseURLOverride).
			Str("APP_TITLE", cfg.AppTitle)).
		Msg("api configuration check")

	return Report{
		BaseURL:     cfg.BaseURL,
		IsValid:     cfg.BaseURL != "",
		Environment: cfg.Environment(),
	}
}

// TestAPIConnection issues a single GET to the root of the resolved base URL
// and reports whether it answered with a 2xx status. Every failure is logged
// and turned into false. Only ctx bounds the call.
func TestAPIConnection(ctx context.Context, cfg config.APIConfig, log *logger.Logger) bool {
	if log == nil {
		log = logger.Nop()
	}

	target := probeURL(cfg)

	resp, err := utils.NewHTTPClient().R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		log.Error().Err(err).Str("url", target).Msg("failed to connect to api server")
		return false
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		log.Warn().Int("status", resp.StatusCode()).Str("url", target).Msg("api server responded with non-success status")
		return false
	}

	log.Info().Str("url", target).Msg("api server is reachable")
	return true
}

// probeURL returns "{baseURL}/". A relative development base URL is
// resolved against the shell origin.
func probeURL(cfg config.APIConfig) string {
	base := cfg.BaseURL
	if strings.HasPrefix(base, "/") {
		base = strings.TrimRight(cfg.Origin, "/") + base
	}
	return strings.TrimRight(base, "/") + "/"
}
