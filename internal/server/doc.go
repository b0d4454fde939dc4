// Package server runs the shell HTTP server.
//
// It covers startup, signal handling and graceful shutdown.
package server
