package server

// Server defines the lifecycle contract of the node service.
//
// RunServer blocks until shutdown is requested by a signal; Shutdown stops
// accepting requests and waits for in-flight ones.
type Server interface {
	RunServer()
	Shutdown()
}
