// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// CORS handling uses Fiber's builtin middleware and is wired directly in the
// application setup. The API itself is public and read-only, so there is no
// authentication layer.
package middleware
