package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/labstack/echo/v4"
)

type notePayload struct {
	ID    int64   `param:"id" json:"-"`
	Title string  `json:"title" validate:"notblank"`
	Owner string  `json:"created_by" validate:"notblank"`
	Tag   *string `json:"tag" validate:"omitempty,notblank"`
}

func (p *notePayload) Validate() error {
	return Struct(p)
}

func bindNote(t *testing.T, body string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notes/3", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("3")

	return BindAndValidate(c, &notePayload{})
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("got %v (%T), want *errs.HTTPError", err, err)
	}
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "all missing",
			body:        `{}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation failed: Title can't be blank, Created by can't be blank",
		},
		{
			name:        "whitespace only",
			body:        `{"title":"  ","created_by":"1"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation failed: Title can't be blank",
		},
		{
			name:        "blank optional field",
			body:        `{"title":"a","created_by":"1","tag":""}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation failed: Tag can't be blank",
		},
		{
			name:        "malformed json",
			body:        `{"title":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MessageInvalidBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, bindNote(t, tt.body))

			if httpErr.Status != tt.wantStatus {
				t.Errorf("status: got %d, want %d", httpErr.Status, tt.wantStatus)
			}
			if tt.wantMessage != "" && httpErr.Message != tt.wantMessage {
				t.Errorf("message: got %q, want %q", httpErr.Message, tt.wantMessage)
			}
		})
	}
}

func bindPath(t *testing.T, id string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notes/"+id, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(id)

	return BindAndValidate(c, &notePayload{})
}

func TestBindAndValidatePathParams(t *testing.T) {
	tests := []struct {
		id          string
		wantStatus  int
		wantMessage string
	}{
		{id: "abc", wantStatus: http.StatusBadRequest, wantMessage: MessageInvalidID},
		{id: "1/items", wantStatus: http.StatusNotFound, wantMessage: MessageRouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			httpErr := asHTTPError(t, bindPath(t, tt.id))

			if httpErr.Status != tt.wantStatus {
				t.Errorf("status: got %d, want %d", httpErr.Status, tt.wantStatus)
			}
			if httpErr.Message != tt.wantMessage {
				t.Errorf("message: got %q, want %q", httpErr.Message, tt.wantMessage)
			}
			if strings.Contains(httpErr.Message, "strconv") {
				t.Errorf("message leaks parser text: %q", httpErr.Message)
			}
		})
	}
}

func TestBindAndValidateValid(t *testing.T) {
	if err := bindNote(t, `{"title":"Learn Elm","created_by":"1"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestToHTTPErrorFieldErrors(t *testing.T) {
	httpErr := asHTTPError(t, ToHTTPError(Struct(&notePayload{Title: "x"})))

	if len(httpErr.Errors) != 1 {
		t.Fatalf("field errors: got %+v", httpErr.Errors)
	}
	if fe := httpErr.Errors[0]; fe.Field != "created_by" || fe.Error != "can't be blank" {
		t.Errorf("got %+v", fe)
	}
}

func TestToHTTPErrorCustomErrors(t *testing.T) {
	err := CustomValidationErrors{
		{Field: "page", Message: "must be greater than 0"},
		{Field: "results_per_page", Message: "is not a number"},
	}

	httpErr := asHTTPError(t, ToHTTPError(err))
	want := "Validation failed: Page must be greater than 0, Results per page is not a number"
	if httpErr.Message != want {
		t.Errorf("message: got %q, want %q", httpErr.Message, want)
	}
}

func TestToHTTPErrorPassesOtherErrors(t *testing.T) {
	other := errors.New("boom")
	if got := ToHTTPError(other); got != other {
		t.Errorf("got %v, want the original error", got)
	}
}

func TestHumanize(t *testing.T) {
	for in, want := range map[string]string{
		"created_by":            "Created by",
		"name":                  "Name",
		"password_confirmation": "Password confirmation",
		"":                      "",
	} {
		if got := Humanize(in); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}
