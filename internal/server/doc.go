// Package server runs the node service's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight uploads finish.
package server
