// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MODE":  "development",
		"APP_TITLE": "Tools",

		"API_BASE_URL":        "https://example.com",
		"API_REQUEST_TIMEOUT": "5s",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"PROXY_PREFIX":        "/backend",
		"PROXY_TARGET":        "http://127.0.0.1:9000",
		"PROXY_PRESERVE_HOST": "true",
		"PROXY_SECURE":        "true",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "development", cfg.App.Mode)
	assert.Equal(t, "Tools", cfg.App.Title)

	assert.Equal(t, "https://example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/backend", cfg.Proxy.Prefix)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Proxy.Target)
	assert.True(t, cfg.Proxy.PreserveHost)
	assert.True(t, cfg.Proxy.Secure)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_BASE_URL": "https://example.com",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.False(t, cfg.Proxy.Secure)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_REQUEST_TIMEOUT": "ten seconds",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PROXY_SECURE": "maybe",
	})

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}
