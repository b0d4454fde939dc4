package config

import (
	"fmt"
	"time"
)

const (
	// DevProxyBaseURL is the relative base URL used in development mode.
	// Requests under it are served by the dev proxy.
	DevProxyBaseURL = "/api"
	// DefaultProductionOrigin is the backend origin used in production when
	// no override is configured.
	DefaultProductionOrigin = "https://your-domain.com"
	// APIPathSuffix is appended to production origins.
	APIPathSuffix = "/api"
)

// APIConfig is the read-only view of the configuration consumed by the API
// client and the diagnostics helpers. It is derived once at startup by
// [GetAPIConfig] or [NewAPIConfig] and never mutated afterwards.
type APIConfig struct {
	// BaseURL is the resolved base URL of every backend call, see
	// [ResolveBaseURL].
	BaseURL string
	// IsDevelopment reports whether the application runs in development mode.
	IsDevelopment bool
	// AppTitle is the application title.
	AppTitle string
	// Origin is the shell server origin (e.g. "http://127.0.0.1:5173").
	// Callers outside the browser use it to reach a relative BaseURL.
	Origin string
	// BaseURLOverride is the raw API_BASE_URL value the BaseURL was
	// resolved from. Reported by diagnostics only.
	BaseURLOverride string
	// RequestTimeout bounds every API request.
	RequestTimeout time.Duration
}

// Environment returns "development" or "production".
func (c APIConfig) Environment() string {
	if c.IsDevelopment {
		return ModeDevelopment
	}
	return ModeProduction
}

// ResolveBaseURL returns the base URL of the tools backend.
//
// In development mode the relative [DevProxyBaseURL] is returned regardless
// of override. Otherwise override (when set) or [DefaultProductionOrigin] is
// returned with [APIPathSuffix] appended.
func ResolveBaseURL(isDevelopment bool, override string) string {
	if isDevelopment {
		return DevProxyBaseURL
	}

	if override != "" {
		return override + APIPathSuffix
	}

	return DefaultProductionOrigin + APIPathSuffix
}

// NewAPIConfig derives the [APIConfig] view from an already merged
// [StructuredConfig].
func NewAPIConfig(cfg *StructuredConfig) APIConfig {
	isDev := cfg.App.IsDevelopment()

	return APIConfig{
		BaseURL:         ResolveBaseURL(isDev, cfg.API.BaseURL),
		IsDevelopment:   isDev,
		AppTitle:        cfg.App.Title,
		Origin:          "http://" + cfg.Server.HTTPAddress,
		BaseURLOverride: cfg.API.BaseURL,
		RequestTimeout:  cfg.API.RequestTimeout,
	}
}

// GetAPIConfig loads the structured configuration from args and the
// environment and returns its [APIConfig] view.
func GetAPIConfig(args []string) (APIConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return APIConfig{}, fmt.Errorf("error get structured config: %w", err)
	}

	return NewAPIConfig(cfg), nil
}
