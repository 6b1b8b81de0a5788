// Package testutil runs the full HTTP stack against a throwaway SQLite
// database for integration tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/deppfellow/todo-api/internal/logger"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/router"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// TestSecret signs tokens in tests.
const TestSecret = "test-secret"

// TestServer is a migrated database plus the router built on top of it.
type TestServer struct {
	Server   *server.Server
	Repos    *repository.Repositories
	Services *service.Services
	Router   *echo.Echo
}

// NewTestConfig loads the real config with a SQLite database under
// t.TempDir and rate limiting off. It uses t.Setenv, so callers cannot run
// in parallel.
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()

	t.Setenv(config.ConfigFileEnv, "")
	t.Setenv("TODOS_PRIMARY__ENV", "test")
	t.Setenv("TODOS_DATABASE__DRIVER", config.DriverSQLite)
	t.Setenv("TODOS_DATABASE__PATH", filepath.Join(t.TempDir(), "todos.db"))
	t.Setenv("TODOS_AUTH__SECRET_KEY", TestSecret)
	t.Setenv("TODOS_SERVER__RATE_LIMIT__ENABLED", "false")
	t.Setenv("TODOS_REDIS__ADDRESS", "")
	t.Setenv("TODOS_INTEGRATION__RESEND_API_KEY", "")

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

// NewTestServer builds the whole application for cfg, or for
// NewTestConfig when cfg is nil.
func NewTestServer(t *testing.T, cfg *config.Config) *TestServer {
	t.Helper()

	if cfg == nil {
		cfg = NewTestConfig(t)
	}

	log := zerolog.Nop()
	if err := database.Migrate(context.Background(), &log, cfg); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	srv, err := server.New(cfg, &log, logger.NewLoggerService(cfg.Observability))
	if err != nil {
		t.Fatalf("server: %v", err)
	}
	t.Cleanup(func() {
		_ = srv.Shutdown(context.Background())
	})

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(srv, repos)
	if err != nil {
		t.Fatalf("services: %v", err)
	}

	return &TestServer{
		Server:   srv,
		Repos:    repos,
		Services: services,
		Router:   router.NewRouter(srv, handler.NewHandlers(srv, services), services),
	}
}

// Do sends a request through the router. body is JSON encoded unless it is
// nil or already a string. An empty token sends no Authorization header.
func (ts *TestServer) Do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return Serve(ts.Router, req)
}

// NewRequest builds a request for Serve.
func NewRequest(method, path string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, path, body)
}

// Serve runs req through h and records the response.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// CreateUser signs a user up directly through the auth service and
// returns it with a valid token.
func (ts *TestServer) CreateUser(t *testing.T, email string) (*model.User, string) {
	t.Helper()

	ctx := context.Background()
	resp, err := ts.Services.Auth.Signup(ctx, &model.SignupPayload{
		Name:                 "Test User",
		Email:                email,
		Password:             "password",
		PasswordConfirmation: "password",
	})
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}

	user, err := ts.Repos.Users.GetUserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("load user %s: %v", email, err)
	}
	return user, resp.AuthToken
}

// CreateTodo stores a todo owned by owner.
func (ts *TestServer) CreateTodo(t *testing.T, title string, owner *model.User) *model.Todo {
	t.Helper()

	todo := &model.Todo{Title: title, CreatedBy: fmt.Sprint(owner.ID)}
	if err := ts.Repos.Todos.CreateTodo(context.Background(), todo); err != nil {
		t.Fatalf("create todo: %v", err)
	}
	return todo
}

// CreateItems stores n items named "Item 1".."Item n" under todoID.
func (ts *TestServer) CreateItems(t *testing.T, todoID int64, n int) []model.Item {
	t.Helper()

	items := make([]model.Item, 0, n)
	for i := 1; i <= n; i++ {
		item := &model.Item{TodoID: todoID, Name: fmt.Sprintf("Item %d", i)}
		if err := ts.Repos.Items.CreateItem(context.Background(), item); err != nil {
			t.Fatalf("create item: %v", err)
		}
		items = append(items, *item)
	}
	return items
}

// DecodeJSON decodes the recorded body into T.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

// AssertStatus fails the test when the recorded status differs.
func AssertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

// ErrorMessage extracts "message" from an error body.
func ErrorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	return DecodeJSON[map[string]any](t, rec)["message"].(string)
}
