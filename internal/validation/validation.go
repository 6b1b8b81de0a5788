// Package validation binds request payloads and validates them.
//
// It uses the `validator` library to enforce rules defined in struct tags
// and turns failures into 422 errors whose message reads like
// "Validation failed: Name can't be blank".
package validation
