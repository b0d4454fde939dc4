// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Application run modes accepted in [App.Mode].
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// tool-suite application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: run mode and title.
	App App `envPrefix:"APP_"`

	// API holds settings of the outbound client talking to the tools
	// backend.
	API API `envPrefix:"API_"`

	// Server holds network settings of the shell HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Proxy holds the development reverse-proxy rule.
	Proxy Proxy `envPrefix:"PROXY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Mode is either "development" or "production". Development mode routes
	// API calls through the dev proxy and enables request/response logging.
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// Title is the human-readable application title shown in every page.
	// Env: APP_TITLE
	Title string `env:"TITLE"`
}

// IsDevelopment reports whether the application runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Mode == ModeDevelopment
}

// Environment returns the normalised environment label.
func (a App) Environment() string {
	if a.IsDevelopment() {
		return ModeDevelopment
	}
	return ModeProduction
}

// API holds configuration of the outbound API client.
type API struct {
	// BaseURL overrides the production backend origin
	// (e.g. "https://example.com"). The "/api" suffix is appended by
	// [ResolveBaseURL]. Ignored in development mode.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound API request (e.g. "10s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the shell HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:5173").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Proxy describes the development-only reverse-proxy rule.
type Proxy struct {
	// Prefix is the path prefix forwarded to Target (e.g. "/api").
	// Env: PROXY_PREFIX
	Prefix string `env:"PREFIX"`

	// Target is the origin receiving proxied requests
	// (e.g. "http://127.0.0.1:8000").
	// Env: PROXY_TARGET
	Target string `env:"TARGET"`

	// PreserveHost keeps the inbound Host header. By default the Host
	// header is rewritten to the target host.
	// Env: PROXY_PRESERVE_HOST
	PreserveHost bool `env:"PRESERVE_HOST"`

	// Secure enables TLS certificate verification of the target.
	// Env: PROXY_SECURE
	Secure bool `env:"SECURE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields left empty by every source.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
