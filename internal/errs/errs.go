// Package errs defines the error types returned by services and handlers.
//
// Every failure that reaches the HTTP boundary is an *HTTPError so the
// global error handler can render a consistent body: the usual
// {code, message, status, errors} shape, or the plain {"message": "..."}
// body used for token failures.
package errs
