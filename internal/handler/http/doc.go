// Package http implements the HTTP transport layer of the tool-suite shell.
//
// It renders one page per route of the route table, exposes the diagnostic
// endpoints under /debug and, in development mode, mounts the dev proxy.
// Request tracing and access logging are handled here before requests reach
// the service layer.
package http
