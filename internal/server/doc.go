// Package server wires and runs the HTTP transport of the key service.
//
// It owns the server lifecycle: binding the listener, applying the request
// timeout, and draining in-flight requests on SIGTERM, SIGINT or SIGQUIT.
package server
