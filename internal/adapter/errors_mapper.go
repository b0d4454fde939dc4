package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrorKind is the diagnostic class of an API failure.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNetwork
	KindNotFound
	KindMethodNotAllowed
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindServer:
		return "server"
	default:
		return "other"
	}
}

// Classify sorts err into an [ErrorKind]. Timeouts and cancellations are
// reported as [KindOther]; any other transport failure is [KindNetwork].
func Classify(err error) ErrorKind {
	if err == nil {
		return KindOther
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return kindFromStatus(httpErr.StatusCode)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindOther
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindOther
		}
		return KindNetwork
	}

	return KindOther
}

func kindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusMethodNotAllowed:
		return KindMethodNotAllowed
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindOther
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	httpErr := &HTTPError{
		StatusCode: resp.StatusCode(),
		Body:       []byte(strings.TrimSpace(string(resp.Body()))),
	}
	if resp.Request != nil {
		httpErr.Method = resp.Request.Method
		httpErr.URL = resp.Request.URL
	}

	switch kindFromStatus(resp.StatusCode()) {
	case KindNotFound:
		httpErr.sentinel = ErrNotFound
	case KindMethodNotAllowed:
		httpErr.sentinel = ErrMethodNotAllowed
	case KindServer:
		httpErr.sentinel = ErrServer
	default:
		httpErr.sentinel = ErrUnexpectedStatus
	}

	return httpErr
}
