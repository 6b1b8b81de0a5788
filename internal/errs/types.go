package errs

import (
	"fmt"
	"net/http"
	"strings"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError with the regular body.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusUnauthorized),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewTokenError creates a 422 whose body is exactly {"message": message}.
// Used for "Missing token", "Invalid token" and "Signature has expired".
func NewTokenError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusUnprocessableEntity),
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Plain:   true,
	}
}

// NewCredentialsError creates a plain-bodied 401 for a failed login.
func NewCredentialsError(message string) *HTTPError {
	err := NewUnauthorizedError(message, false)
	err.Plain = true
	return err
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusForbidden),
		Message:  message,
		Status:   http.StatusForbidden,
		Override: override,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors
//   - action: optional client instruction (e.g. redirect)
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewRecordNotFoundError builds the 404 returned when a lookup by id misses:
//
//	Couldn't find Todo with 'id'=7
func NewRecordNotFoundError(entity string, id int64) *HTTPError {
	return NewNotFoundError(fmt.Sprintf("Couldn't find %s with 'id'=%d", entity, id), true, nil)
}

// NewUnprocessableEntityError creates a 422 carrying field-level errors.
func NewUnprocessableEntityError(message string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusUnprocessableEntity),
		Message:  message,
		Status:   http.StatusUnprocessableEntity,
		Override: true,
		Errors:   errors,
	}
}

// NewTooManyRequestsError creates a 429 for rate-limited clients.
func NewTooManyRequestsError() *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusTooManyRequests),
		Message: http.StatusText(http.StatusTooManyRequests),
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the real internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ValidationError converts a list of full messages into a 422:
//
//	Validation failed: Title can't be blank, Created by can't be blank
func ValidationError(fullMessages []string, fieldErrors []FieldError) *HTTPError {
	return NewUnprocessableEntityError("Validation failed: "+strings.Join(fullMessages, ", "), fieldErrors)
}
