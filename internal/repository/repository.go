// Package repository handles all interactions with the database.
//
// It contains the SQL and the methods to fetch, persist or update data,
// keeping SQL away from the service layer. Queries are written once and run
// on either driver through database.Querier.
package repository

import (
	stderrors "errors"
	"strconv"
	"time"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/lib/pagination"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a lookup, update or delete matches no row.
var ErrNotFound = stderrors.New("record not found")

// now is the timestamp written to created_at/updated_at.
// Microsecond precision matches what Postgres stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// scanErr translates a driver miss into ErrNotFound and wraps anything else.
func scanErr(err error, op string) error {
	if stderrors.Is(err, database.ErrNoRows) {
		return ErrNotFound
	}
	return errors.Wrap(err, op)
}

// affectedErr reports ErrNotFound when a write matched nothing.
func affectedErr(affected int64, err error, op string) error {
	if err != nil {
		return errors.Wrap(err, op)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// windowClause appends LIMIT/OFFSET for a bounded window. next is the next
// free placeholder number.
func windowClause(query string, args []any, w pagination.Window, next int) (string, []any) {
	if w.All {
		return query, args
	}
	query += " LIMIT $" + strconv.Itoa(next) + " OFFSET $" + strconv.Itoa(next+1)
	return query, append(args, w.Limit, w.Offset)
}
