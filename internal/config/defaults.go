package config

import (
	"strings"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults] to fields that no
// configuration source has set.
const (
	DefaultAppTitle          = "工具集合"
	DefaultAPIRequestTimeout = 10 * time.Second
	DefaultServerAddress     = "127.0.0.1:5173"
	DefaultServerTimeout     = 30 * time.Second
	DefaultProxyPrefix       = "/api"
	DefaultProxyTarget       = "http://127.0.0.1:8000"
)

func (cfg *StructuredConfig) applyDefaults() {
	cfg.App.Mode = strings.ToLower(strings.TrimSpace(cfg.App.Mode))
	if cfg.App.Mode == "" {
		cfg.App.Mode = ModeProduction
	}
	if cfg.App.Title == "" {
		cfg.App.Title = DefaultAppTitle
	}

	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = DefaultAPIRequestTimeout
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerTimeout
	}

	if cfg.Proxy.Prefix == "" {
		cfg.Proxy.Prefix = DefaultProxyPrefix
	}
	if cfg.Proxy.Target == "" {
		cfg.Proxy.Target = DefaultProxyTarget
	}
}
