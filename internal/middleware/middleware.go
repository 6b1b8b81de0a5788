// Package middleware holds the global and route-level middleware.
//
// These intercept requests for cross-cutting concerns such as bearer token
// authentication, request logging, CORS, rate limiting, tracing and panic
// recovery, plus the global error handler that renders every error response.
package middleware
