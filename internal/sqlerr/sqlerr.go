// Package sqlerr handles database driver errors.
//
// It parses driver error codes (Postgres SQLSTATE via pgconn, SQLite
// extended result codes via modernc) and converts them into user-friendly
// HTTP errors, e.g. a unique violation on users.email becomes a 400
// "A User with this Email already exists".
package sqlerr
