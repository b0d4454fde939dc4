package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(mode, target string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:   config.App{Mode: mode, Title: "工具集合"},
		Proxy: config.Proxy{Prefix: "/api", Target: target},
	}
}

func TestNewHandlers_NilServices(t *testing.T) {
	_, err := NewHandlers(nil, newTestConfig(config.ModeProduction, ""), logger.Nop())

	assert.ErrorIs(t, err, errNoServices)
}

func TestNewHandlers_ProductionHasNoProxy(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestConfig(config.ModeProduction, "http://127.0.0.1:8000"), logger.Nop())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.HTTP.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/x", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewHandlers_DevelopmentProxiesAPI(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	}))
	defer backend.Close()

	h, err := NewHandlers(&service.Services{}, newTestConfig(config.ModeDevelopment, backend.URL), logger.Nop())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.HTTP.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/x", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"path":"/api/v1/x"}`, rr.Body.String())
}

func TestNewHandlers_DevelopmentInvalidTarget(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, newTestConfig(config.ModeDevelopment, "not a url"), logger.Nop())

	assert.Error(t, err)
}
