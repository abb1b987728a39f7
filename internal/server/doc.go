// Package server wires and runs the storage server's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown.
package server
