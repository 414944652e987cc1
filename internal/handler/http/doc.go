// Package http implements the HTTP transport of the key service.
//
// It wires chi routes for key lookups, version and health endpoints, and the
// middleware chain (panic recovery, request tracing, access logging, response
// compression). Lookup outcomes are rendered from the response record built
// by the service layer, so the HTTP and Lambda front-ends answer identically.
package http
