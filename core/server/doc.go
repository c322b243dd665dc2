// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the listen address and the API key that protects
// the moderation endpoints.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to bind the Fiber application.
package server
