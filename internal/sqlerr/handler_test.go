package sqlerr

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestHandleErrorPostgres(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "unique email",
			err:         &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key", Severity: "ERROR"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "USER_ALREADY_EXISTS",
			wantMessage: "A User with this Email already exists",
		},
		{
			name:        "missing todo",
			err:         fmt.Errorf("insert item: %w", &pgconn.PgError{Code: "23503", TableName: "items", ColumnName: "todo_id"}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "ITEM_NOT_FOUND",
			wantMessage: "The referenced Todo does not exist",
		},
		{
			name:        "not null",
			err:         &pgconn.PgError{Code: "23502", TableName: "todos", ColumnName: "title"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "TODO_REQUIRED",
			wantMessage: "The Title is required",
		},
		{
			name:        "unknown sqlstate",
			err:         &pgconn.PgError{Code: "42P01"},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
		{
			name:        "pgx no rows",
			err:         pgx.ErrNoRows,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "sql no rows",
			err:         fmt.Errorf("wrapped: %w", sql.ErrNoRows),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr, ok := HandleError(tt.err).(*errs.HTTPError)
			if !ok {
				t.Fatalf("HandleError returned %T, want *errs.HTTPError", HandleError(tt.err))
			}
			if httpErr.Status != tt.wantStatus {
				t.Errorf("status: got %d, want %d", httpErr.Status, tt.wantStatus)
			}
			if httpErr.Code != tt.wantCode {
				t.Errorf("code: got %q, want %q", httpErr.Code, tt.wantCode)
			}
			if httpErr.Message != tt.wantMessage {
				t.Errorf("message: got %q, want %q", httpErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	in := errs.NewRecordNotFoundError("Todo", 3)
	if got := HandleError(in); got != in {
		t.Errorf("HandleError: got %v, want the same *HTTPError", got)
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := map[string]string{
		"unique_users_email": "email",
		"users_email_key":    "email",
		"todos_title_ukey":   "title",
		"":                   "",
		"pk_users":           "",
	}
	for in, want := range tests {
		if got := extractColumnForUniqueViolation(in); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q): got %q, want %q", in, got, want)
		}
	}
}
