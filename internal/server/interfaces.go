package server

import "context"

// Server defines the lifecycle contract of the shell server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT is received.
	RunServer()

	// Run serves requests until ctx is done or the listener fails, then
	// shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
