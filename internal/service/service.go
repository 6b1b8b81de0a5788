// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// payloads from handlers, resolves parent records, and calls repositories.
// Lookups that miss become 404 HTTP errors here; every other store error is
// returned wrapped and mapped by the global error handler.
package service
