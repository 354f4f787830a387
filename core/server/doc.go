// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings: the listen port, the
// CORS origin allowlist (the API is consumed by browser dashboards) and the row
// limit of the /preview endpoint.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings into the application configuration.
package server
