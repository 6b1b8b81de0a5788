package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"notblank"`)
//   - Implement Validate() error that calls validation.Struct(req)
//   - Return validator.ValidationErrors or CustomValidationErrors
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a validation issue that cannot be expressed via tags.
// Field is the request key, Message the predicate ("must be greater than 0").
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report the key the client actually sent instead of the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	_ = v.RegisterValidation("notblank", notBlank)

	return v
}

// notBlank fails for empty or whitespace-only strings.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return strings.TrimSpace(field.String()) != ""
	}
	return !field.IsZero()
}

// Struct validates a payload with the shared validator instance.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. Path params, then query (GET/DELETE/HEAD), then body are bound.
//  2. payload.Validate() applies validation rules.
//  3. Bind failures become 400 with a fixed message, validation failures 422
//     with field-level errors.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		return err
	}

	if err := payload.Validate(); err != nil {
		return ToHTTPError(err)
	}

	return nil
}

const (
	MessageRouteNotFound = "Route not found"
	MessageInvalidID     = "Invalid id"
	MessageInvalidQuery  = "Invalid query parameters"
	MessageInvalidBody   = "Malformed request body"
)

func bind(c echo.Context, payload any) error {
	// A param that swallowed a slash means the path had segments no route
	// declares, e.g. /v2/todos/1/items.
	for _, v := range c.ParamValues() {
		if strings.Contains(v, "/") {
			return errs.NewNotFoundError(MessageRouteNotFound, false, nil)
		}
	}

	binder := &echo.DefaultBinder{}

	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError(MessageInvalidID, false, nil, nil, nil)
	}

	switch c.Request().Method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		if err := binder.BindQueryParams(c, payload); err != nil {
			return errs.NewBadRequestError(MessageInvalidQuery, false, nil, nil, nil)
		}
	}

	if err := binder.BindBody(c, payload); err != nil {
		return errs.NewBadRequestError(MessageInvalidBody, false, nil, nil, nil)
	}

	return nil
}

// ToHTTPError converts a Validate() error into a 422. Errors that are not
// validation errors are returned unchanged.
func ToHTTPError(err error) error {
	var validationErrors validator.ValidationErrors
	var customErrors CustomValidationErrors

	switch {
	case errors.As(err, &validationErrors):
	case errors.As(err, &customErrors):
	default:
		return err
	}

	var fullMessages []string
	var fieldErrors []errs.FieldError

	add := func(field, msg string) {
		fullMessages = append(fullMessages, Humanize(field)+" "+msg)
		fieldErrors = append(fieldErrors, errs.FieldError{Field: field, Error: msg})
	}

	for _, fe := range validationErrors {
		add(fe.Field(), tagMessage(fe))
	}
	for _, ce := range customErrors {
		add(ce.Field, ce.Message)
	}

	return errs.ValidationError(fullMessages, fieldErrors)
}

// tagMessage maps a validator tag to the predicate part of a full message.
func tagMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required", "notblank":
		return "can't be blank"

	case "email":
		return "is invalid"

	case "min":
		if isString {
			return fmt.Sprintf("is too short (minimum is %s characters)", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())

	case "max":
		if isString {
			return fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "number", "numeric":
		return "is not a number"

	case "eqfield":
		return "doesn't match " + Humanize(toSnake(fe.Param()))

	case "oneof":
		return "is not included in the list"

	default:
		return "is invalid"
	}
}

// Humanize turns a request key into the attribute name used in messages:
//
//	"created_by" -> "Created by"
func Humanize(field string) string {
	s := strings.TrimSpace(strings.ReplaceAll(field, "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// toSnake converts a Go field name such as "PasswordConfirmation" to "password_confirmation".
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
