// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client used to talk to the external tools
// backend.
//
// The primary abstraction is [APIClient], which decouples tool services and
// the command-line from the underlying HTTP library. [NewHTTPAPIClient]
// builds the resty-backed implementation: base URL resolved once from
// [config.APIConfig], fixed timeout, JSON headers and logging hooks around
// every call.
//
// Non-2xx responses are mapped to [*HTTPError] values wrapping the sentinels
// defined in errors.go, so that callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404). [Classify] sorts any returned error into an
// [ErrorKind] for diagnostics.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient performs calls against the tools backend. Every call is a single
// best-effort attempt: no retries, no backoff.
type APIClient interface {
	// BaseURL returns the resolved base URL every request path is appended
	// to (e.g. "/api" in development, "https://example.com/api" in
	// production).
	BaseURL() string

	// Request sends method to path (relative to BaseURL) with an optional
	// JSON-encodable body. A non-2xx status is returned as a [*HTTPError];
	// transport failures are returned as reported by the HTTP library.
	// Every failure is logged through the configured [RequestLogger] before
	// it is returned unchanged.
	Request(ctx context.Context, method, path string, body any) (*Response, error)

	// Get is a shorthand for Request with http.MethodGet and no body.
	Get(ctx context.Context, path string) (*Response, error)

	// Post is a shorthand for Request with http.MethodPost.
	Post(ctx context.Context, path string, body any) (*Response, error)
}

// RequestLogger is the logging strategy invoked around every API call.
// Implementations must be safe for concurrent use.
type RequestLogger interface {
	// LogRequest is called before a request is sent. The client only calls
	// it in development mode.
	LogRequest(ctx context.Context, entry RequestEntry)

	// LogResponse is called after a 2xx response. The client only calls it
	// in development mode.
	LogResponse(ctx context.Context, entry ResponseEntry)

	// LogError is called for every failed call, in every mode.
	LogError(ctx context.Context, entry ErrorEntry)
}
