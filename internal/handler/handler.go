// Package handler is the HTTP layer, the first stop after the router.
//
// Handlers bind and validate request payloads through the typed Handle
// pipeline, call the service layer and write the JSON response.
package handler
