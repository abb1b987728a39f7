// Package http implements the REST API of the GuestNama storage server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, response compression,
// and body integrity checks are handled in this package before requests are
// delegated to the service layer.
package http
