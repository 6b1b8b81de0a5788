package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/deppfellow/todo-api/internal/testutil"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, userID int64, expiresAt time.Time) string {
	t.Helper()

	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func assertPlainBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	testutil.AssertStatus(t, rec, status)
	if want := `{"message":"` + message + `"}`; rec.Body.String() != want {
		t.Errorf("body: got %q, want %q", rec.Body.String(), want)
	}
}

func TestMissingToken(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/v1/todos"},
		{http.MethodPost, "/v1/todos"},
		{http.MethodGet, "/v1/todos/1"},
		{http.MethodPut, "/v1/todos/1"},
		{http.MethodDelete, "/v1/todos/1"},
		{http.MethodGet, "/v1/todos/1/items"},
		{http.MethodPost, "/v1/todos/1/items"},
		{http.MethodGet, "/v1/todos/1/items/1"},
		{http.MethodPut, "/v1/todos/1/items/1"},
		{http.MethodDelete, "/v1/todos/1/items/1"},
		{http.MethodGet, "/v2/todos"},
		{http.MethodPost, "/v2/todos"},
		{http.MethodGet, "/v2/todos/1"},
		{http.MethodPut, "/v2/todos/1"},
		{http.MethodDelete, "/v2/todos/1"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			rec := ts.Do(t, r.method, r.path, nil, "")
			assertPlainBody(t, rec, http.StatusUnprocessableEntity, "Missing token")
		})
	}
}

func TestMissingTokenBeatsValidation(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)

	rec := ts.Do(t, http.MethodPost, "/v2/todos", map[string]any{"title": "Foobar"}, "")
	assertPlainBody(t, rec, http.StatusUnprocessableEntity, "Missing token")
}

func TestRejectedTokens(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)
	user, _ := ts.CreateUser(t, "tokens@example.com")

	tests := []struct {
		name    string
		token   string
		message string
	}{
		{name: "garbage", token: "not-a-jwt", message: "Invalid token"},
		{name: "wrong secret", token: signToken(t, "other-secret", user.ID, time.Now().Add(time.Hour)), message: "Invalid token"},
		{name: "unknown user", token: signToken(t, testutil.TestSecret, user.ID+100, time.Now().Add(time.Hour)), message: "Invalid token"},
		{name: "expired", token: signToken(t, testutil.TestSecret, user.ID, time.Now().Add(-time.Minute)), message: "Signature has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.Do(t, http.MethodGet, "/v1/todos", nil, tt.token)
			assertPlainBody(t, rec, http.StatusUnprocessableEntity, tt.message)
		})
	}
}

func TestBareTokenAccepted(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)
	_, token := ts.CreateUser(t, "bare@example.com")

	req := httptest.NewRequest(http.MethodGet, "/v2/todos", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
}

func TestSignupAndLogin(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)

	rec := ts.Do(t, http.MethodPost, "/signup", map[string]any{
		"name":                  "Ash",
		"email":                 "ash@example.com",
		"password":              "foobar",
		"password_confirmation": "foobar",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusCreated)

	signup := testutil.DecodeJSON[model.AuthResponse](t, rec)
	if signup.Message != "Account created successfully" || signup.AuthToken == "" {
		t.Fatalf("unexpected signup response %+v", signup)
	}

	rec = ts.Do(t, http.MethodGet, "/v1/todos", nil, signup.AuthToken)
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = ts.Do(t, http.MethodPost, "/auth/login", map[string]any{"email": "ash@example.com", "password": "foobar"}, "")
	testutil.AssertStatus(t, rec, http.StatusOK)

	login := testutil.DecodeJSON[map[string]any](t, rec)
	token, _ := login["auth_token"].(string)
	if token == "" {
		t.Fatalf("login returned no token: %v", login)
	}
	if _, ok := login["message"]; ok {
		t.Errorf("login response should only carry the token: %v", login)
	}

	rec = ts.Do(t, http.MethodGet, "/v2/todos", nil, token)
	testutil.AssertStatus(t, rec, http.StatusOK)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)
	ts.CreateUser(t, "login@example.com")

	for name, body := range map[string]any{
		"wrong password": map[string]any{"email": "login@example.com", "password": "nope"},
		"unknown email":  map[string]any{"email": "ghost@example.com", "password": "password"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := ts.Do(t, http.MethodPost, "/auth/login", body, "")
			assertPlainBody(t, rec, http.StatusUnauthorized, "Invalid credentials")
		})
	}
}

func TestSignupValidation(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)

	rec := ts.Do(t, http.MethodPost, "/signup", map[string]any{
		"name":                  "",
		"email":                 "not-an-email",
		"password":              "foo",
		"password_confirmation": "bar",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)

	want := "Validation failed: Name can't be blank, Email is invalid, " +
		"Password is too short (minimum is 6 characters), Password confirmation doesn't match Password"
	if msg := testutil.ErrorMessage(t, rec); msg != want {
		t.Errorf("message:\n got %q\nwant %q", msg, want)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)
	ts.CreateUser(t, "dup@example.com")

	rec := ts.Do(t, http.MethodPost, "/signup", map[string]any{
		"name":                  "Dup",
		"email":                 "dup@example.com",
		"password":              "foobar",
		"password_confirmation": "foobar",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}
