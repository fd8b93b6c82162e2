// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber application from this configuration: the listen
// address, the API key checked by core/middleware and the request body limit, which has to
// fit a source and a reference dataset in one check request.
package server
