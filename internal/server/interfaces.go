package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives and the server has shut down.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// BackgroundRunner runs background work until ctx is cancelled.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
