package server

// Server is the lifecycle contract for the inbound transport. RunServer
// blocks until shutdown is requested; Shutdown stops accepting requests and
// drains the ones in flight.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
