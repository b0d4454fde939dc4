package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG", "APP_MODE", "APP_TITLE", "API_BASE_URL", "SERVER_ADDRESS", "PROXY_PREFIX", "PROXY_TARGET"} {
		t.Setenv(k, "")
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, ModeProduction, cfg.App.Mode)
	assert.Equal(t, DefaultAppTitle, cfg.App.Title)
	assert.Empty(t, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPIRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultProxyPrefix, cfg.Proxy.Prefix)
	assert.Equal(t, DefaultProxyTarget, cfg.Proxy.Target)
	assert.False(t, cfg.Proxy.Secure)
	assert.False(t, cfg.Proxy.PreserveHost)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later sources
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App: App{Mode: "production", Title: "from env"},
			API: API{BaseURL: "https://env.example.com"},
		},
		&StructuredConfig{
			App: App{Mode: "development"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, cfg.App.Mode)
	assert.Equal(t, "from env", cfg.App.Title)
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
}

func TestBuild_NormalisesValues(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{Mode: "  Development "},
		API: API{BaseURL: "https://example.com/"},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, cfg.App.Mode)
	assert.Equal(t, "https://example.com", cfg.API.BaseURL)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown mode",
			cfg:     &StructuredConfig{App: App{Mode: "staging"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "relative base url",
			cfg:     &StructuredConfig{API: API{BaseURL: "example.com"}},
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "negative timeout",
			cfg:     &StructuredConfig{API: API{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "proxy prefix without slash",
			cfg:     &StructuredConfig{Proxy: Proxy{Prefix: "api"}},
			wantErr: ErrInvalidProxyConfigs,
		},
		{
			name:    "proxy target without scheme",
			cfg:     &StructuredConfig{Proxy: Proxy{Target: "127.0.0.1:8000"}},
			wantErr: ErrInvalidProxyConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":   map[string]any{"mode": "development", "title": "JSON tools"},
		"api":   map[string]any{"base_url": "https://json.example.com", "request_timeout": "7s"},
		"proxy": map[string]any{"target": "http://127.0.0.1:8100", "secure": true},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ModeDevelopment, cfg.App.Mode)
	assert.Equal(t, "JSON tools", cfg.App.Title)
	assert.Equal(t, "https://json.example.com", cfg.API.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "http://127.0.0.1:8100", cfg.Proxy.Target)
	assert.True(t, cfg.Proxy.Secure)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithJSON_MalformedFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "broken-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_MODE", "production")
	t.Setenv("API_BASE_URL", "https://env.example.com")

	cfg, err := GetStructuredConfig([]string{"-mode", "development"})
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, cfg.App.Mode)
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
}

func TestGetStructuredConfig_JSONOverridesFlags(t *testing.T) {
	clearConfigEnv(t)
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"title": "from json"},
	})

	cfg, err := GetStructuredConfig([]string{"-title", "from flags", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "from json", cfg.App.Title)
}

func TestGetStructuredConfig_BadFlag(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := GetStructuredConfig([]string{"-request-timeout", "soon"})
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
