package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type echoPayload struct {
	Name string `json:"name" validate:"notblank"`
}

func (p *echoPayload) Validate() error {
	return validation.Struct(p)
}

func newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestHandleWritesJSON(t *testing.T) {
	c, rec := newContext(`{"name":"Ada"}`)

	h := Handle(Handler{}, func(c echo.Context, p *echoPayload) (map[string]string, error) {
		return map[string]string{"hello": p.Name}, nil
	}, http.StatusCreated, &echoPayload{})

	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"hello":"Ada"}` {
		t.Errorf("body: got %s", body)
	}
}

func TestHandleStopsOnValidation(t *testing.T) {
	c, rec := newContext(`{"name":" "}`)

	called := false
	h := Handle(Handler{}, func(c echo.Context, p *echoPayload) (any, error) {
		called = true
		return nil, nil
	}, http.StatusOK, &echoPayload{})

	err := h(c)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("got %v, want a 422", err)
	}
	if called {
		t.Error("endpoint ran despite invalid payload")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("nothing should be written, got %q", rec.Body.String())
	}
}

func TestHandleNoContent(t *testing.T) {
	c, rec := newContext(`{"name":"Ada"}`)

	h := HandleNoContent(Handler{}, func(c echo.Context, p *echoPayload) error {
		return nil
	}, http.StatusNoContent, &echoPayload{})

	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandleReturnsEndpointError(t *testing.T) {
	c, _ := newContext(`{"name":"Ada"}`)
	want := errs.NewRecordNotFoundError("Todo", 1)

	h := HandleNoContent(Handler{}, func(c echo.Context, p *echoPayload) error {
		return want
	}, http.StatusNoContent, &echoPayload{})

	if err := h(c); err != want {
		t.Errorf("got %v, want %v", err, want)
	}
}
