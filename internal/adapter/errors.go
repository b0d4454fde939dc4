package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("api endpoint not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrServer           = errors.New("server error")
	ErrUnexpectedStatus = errors.New("unexpected status")

	ErrEmptyBaseURL = errors.New("empty base url")
	ErrNoOrigin     = errors.New("relative base url requires an origin")
)

// HTTPError is returned for every response with a non-2xx status code.
// It unwraps to the sentinel matching the status class.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Body       []byte

	sentinel error
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("%s: %s %s: http %d", e.sentinel, e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s %s: http %d: %s", e.sentinel, e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *HTTPError) Unwrap() error {
	return e.sentinel
}
