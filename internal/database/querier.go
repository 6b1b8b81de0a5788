package database

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRows is returned by Row.Scan when a query selected nothing,
// regardless of driver.
var ErrNoRows = errors.New("no rows in result set")

// Row is a single-row result.
type Row interface {
	Scan(dest ...any) error
}

// Rows is a multi-row result. Close must be called when done.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier is the minimal surface repositories need from a driver.
//
// Queries are written once in Postgres style ($1, $2, ... each used once and
// in order, RETURNING supported); the sqlite implementation rewrites the
// placeholders.
type Querier interface {
	QueryRow(ctx context.Context, query string, args ...any) Row
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(ctx context.Context, query string, args ...any) (int64, error)
}

// Querier returns the driver-specific Querier for db.
func (db *Database) Querier() Querier {
	if db.Pool != nil {
		return &pgxQuerier{pool: db.Pool}
	}
	return &sqlQuerier{db: db.SQL}
}

type pgxQuerier struct {
	pool *pgxpool.Pool
}

func (q *pgxQuerier) QueryRow(ctx context.Context, query string, args ...any) Row {
	return pgxRow{row: q.pool.QueryRow(ctx, query, args...)}
}

func (q *pgxQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := q.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (q *pgxQuerier) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := q.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type pgxRow struct {
	row pgx.Row
}

func (r pgxRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoRows
		}
		return err
	}
	return nil
}

var placeholder = regexp.MustCompile(`\$\d+`)

// rebind rewrites $n placeholders to sqlite's positional ?.
func rebind(query string) string {
	return placeholder.ReplaceAllString(query, "?")
}

type sqlQuerier struct {
	db *sql.DB
}

func (q *sqlQuerier) QueryRow(ctx context.Context, query string, args ...any) Row {
	return sqlRow{row: q.db.QueryRowContext(ctx, rebind(query), args...)}
}

func (q *sqlQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := q.db.QueryContext(ctx, rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{Rows: rows}, nil
}

func (q *sqlQuerier) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := q.db.ExecContext(ctx, rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type sqlRow struct {
	row *sql.Row
}

func (r sqlRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoRows
		}
		return err
	}
	return nil
}

// sqlRows adapts *sql.Rows, whose Close returns an error.
type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}
