// Package model holds the domain entities (Todo, Item, User) and the
// request payloads handlers bind and validate.
package model

import (
	"time"

	"github.com/deppfellow/todo-api/internal/lib/pagination"
	"github.com/deppfellow/todo-api/internal/lib/utils"
	"github.com/deppfellow/todo-api/internal/validation"
)

// Base carries the columns every table shares.
type Base struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageQuery is embedded by list payloads. Values stay strings so that an
// absent parameter and a malformed one can be told apart.
type PageQuery struct {
	Page           string `query:"page" json:"-"`
	ResultsPerPage string `query:"results_per_page" json:"-"`

	window *pagination.Window
}

// Params parses the query into pagination.Params, collecting one error per
// bad parameter.
func (q PageQuery) Params() (pagination.Params, error) {
	var params pagination.Params
	var failures validation.CustomValidationErrors

	parse := func(key, raw string) *int {
		v, err := utils.ParseOptionalInt(raw)
		switch {
		case err != nil:
			failures = append(failures, validation.CustomValidationError{Field: key, Message: "is not a number"})
			return nil
		case v != nil && *v < 1:
			failures = append(failures, validation.CustomValidationError{Field: key, Message: "must be greater than 0"})
			return nil
		}
		return v
	}

	params.Page = parse("page", q.Page)
	params.ResultsPerPage = parse("results_per_page", q.ResultsPerPage)

	if len(failures) > 0 {
		return pagination.Params{}, failures
	}
	return params, nil
}

// Resolve parses the query once and keeps the resulting window.
func (q *PageQuery) Resolve() error {
	params, err := q.Params()
	if err != nil {
		return err
	}
	w := pagination.Resolve(params)
	q.window = &w
	return nil
}

// Window returns the window kept by Resolve, resolving first when Validate
// was skipped. Bad parameters are reported, never turned into a window.
func (q *PageQuery) Window() (pagination.Window, error) {
	if q.window == nil {
		if err := q.Resolve(); err != nil {
			return pagination.Window{}, validation.ToHTTPError(err)
		}
	}
	return *q.window, nil
}
