package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/rs/zerolog"
)

// RequestEntry describes an outgoing API request.
type RequestEntry struct {
	Method  string
	URL     string
	BaseURL string
	Body    any
}

// ResponseEntry describes a successful API response.
type ResponseEntry struct {
	StatusCode int
	URL        string
	Body       []byte
}

// ErrorEntry describes a failed API call. StatusCode and Body are empty for
// transport failures.
type ErrorEntry struct {
	Kind       ErrorKind
	Err        error
	StatusCode int
	URL        string
	BaseURL    string
	Body       []byte
}

// NopRequestLogger discards every entry. It is the default strategy.
type NopRequestLogger struct{}

func (NopRequestLogger) LogRequest(context.Context, RequestEntry)   {}
func (NopRequestLogger) LogResponse(context.Context, ResponseEntry) {}
func (NopRequestLogger) LogError(context.Context, ErrorEntry)       {}

type zerologRequestLogger struct {
	logger *logger.Logger
}

// NewZerologRequestLogger returns a [RequestLogger] writing structured
// entries to log. When ctx carries a request-scoped zerolog logger (see
// [logger.FromContext]) that logger is used instead, so trace ids propagate
// to API call logs.
func NewZerologRequestLogger(log *logger.Logger) RequestLogger {
	if log == nil {
		log = logger.Nop()
	}
	return &zerologRequestLogger{logger: log}
}

func (z *zerologRequestLogger) LogRequest(ctx context.Context, entry RequestEntry) {
	z.loggerFor(ctx).Debug().
		Str("method", entry.Method).
		Str("url", entry.URL).
		Str("base_url", entry.BaseURL).
		Interface("body", entry.Body).
		Msg("api request")
}

func (z *zerologRequestLogger) LogResponse(ctx context.Context, entry ResponseEntry) {
	ev := z.loggerFor(ctx).Debug().
		Int("status", entry.StatusCode).
		Str("url", entry.URL)
	withBody(ev, entry.Body).Msg("api response")
}

func (z *zerologRequestLogger) LogError(ctx context.Context, entry ErrorEntry) {
	log := z.loggerFor(ctx)

	var ev *zerolog.Event
	var msg string
	switch entry.Kind {
	case KindNetwork:
		ev, msg = log.Error(), "network error: cannot connect to backend server, make sure it is running at base_url"
	case KindNotFound:
		ev, msg = log.Warn(), "api endpoint not found, check that the backend server is running"
	case KindMethodNotAllowed:
		ev, msg = log.Warn(), "method not allowed, this might be a CORS or proxy issue"
	case KindServer:
		ev, msg = log.Error(), "server error occurred"
	default:
		ev, msg = log.Error(), "api error"
	}

	ev = ev.Err(entry.Err).
		Str("kind", entry.Kind.String()).
		Str("url", entry.URL).
		Str("base_url", entry.BaseURL)
	if entry.StatusCode != 0 {
		ev = ev.Int("status", entry.StatusCode)
	}
	withBody(ev, entry.Body).Msg(msg)
}

func (z *zerologRequestLogger) loggerFor(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, z.logger)
}

func withBody(ev *zerolog.Event, body []byte) *zerolog.Event {
	if len(body) == 0 {
		return ev
	}
	if json.Valid(body) {
		return ev.RawJSON("body", body)
	}
	return ev.Str("body", string(body))
}
