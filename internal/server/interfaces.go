package server

import "context"

// Server hosts the key lookup routes.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then drains
	// in-flight lookups.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails. A graceful
	// stop returns nil.
	Run(ctx context.Context) error

	// Shutdown stops accepting lookups and waits for running ones.
	Shutdown()
}
