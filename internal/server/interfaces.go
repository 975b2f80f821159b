package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done or
	// serving fails. A clean shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	// Shutdown waits for in-flight requests until ctx expires.
	Shutdown(ctx context.Context) error
}
