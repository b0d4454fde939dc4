package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/internal/router"
	"github.com/MKhiriev/tool-suite/internal/service"
	"github.com/MKhiriev/tool-suite/internal/views"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	text    *MockTextService
	diag    *MockDiagnosticsService
	appInfo *MockAppInfoService
}

func newTestHandlerWithLogger(t *testing.T, log *logger.Logger) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		text:    NewMockTextService(ctrl),
		diag:    NewMockDiagnosticsService(ctrl),
		appInfo: NewMockAppInfoService(ctrl),
	}

	renderer, err := views.NewRenderer("工具集合", "production")
	require.NoError(t, err)

	h := NewHandler(&service.Services{
		TextService:        mocks.text,
		DiagnosticsService: mocks.diag,
		AppInfoService:     mocks.appInfo,
	}, router.DefaultTable(), renderer, log)

	return h, mocks
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	return newTestHandlerWithLogger(t, logger.Nop())
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandlerWithLogger(t, &logger.Logger{Logger: zerolog.New(&buf)})

	require.NotNil(t, h)
	assert.Nil(t, h.devProxy)
	assert.Contains(t, buf.String(), `"routes":10`)
}

func TestWithDevProxy(t *testing.T) {
	h, _ := newTestHandler(t)
	stub := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	got := h.WithDevProxy(h.proxyCfg, stub)

	assert.Same(t, h, got)
	assert.NotNil(t, h.devProxy)
}
