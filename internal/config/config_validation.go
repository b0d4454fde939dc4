// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error wrapping
// one of the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Mode != ModeDevelopment && cfg.App.Mode != ModeProduction {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, cfg.App.Mode)
	}

	if cfg.API.BaseURL != "" && !isAbsoluteURL(cfg.API.BaseURL) {
		return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidAPIConfigs, cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAPIConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if !strings.HasPrefix(cfg.Proxy.Prefix, "/") {
		return fmt.Errorf("%w: prefix %q must start with '/'", ErrInvalidProxyConfigs, cfg.Proxy.Prefix)
	}
	if !isAbsoluteURL(cfg.Proxy.Target) {
		return fmt.Errorf("%w: target %q must include scheme and host", ErrInvalidProxyConfigs, cfg.Proxy.Target)
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
