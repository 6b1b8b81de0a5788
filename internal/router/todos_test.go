package router_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/testutil"
)

type todosFixture struct {
	ts    *testutil.TestServer
	user  *model.User
	token string
	todos []*model.Todo
}

func newTodosFixture(t *testing.T) *todosFixture {
	ts := testutil.NewTestServer(t, nil)
	user, token := ts.CreateUser(t, "todos@example.com")

	f := &todosFixture{ts: ts, user: user, token: token}
	for i := 1; i <= 10; i++ {
		f.todos = append(f.todos, ts.CreateTodo(t, fmt.Sprintf("Todo %d", i), user))
	}
	return f
}

var versions = []string{"/v1", "/v2"}

func TestListTodos(t *testing.T) {
	for _, v := range versions {
		t.Run(v, func(t *testing.T) {
			f := newTodosFixture(t)

			// Todos of another owner are not listed.
			other, _ := f.ts.CreateUser(t, "other@example.com")
			f.ts.CreateTodo(t, "Not mine", other)

			rec := f.ts.Do(t, http.MethodGet, v+"/todos", nil, f.token)
			testutil.AssertStatus(t, rec, http.StatusOK)

			todos := testutil.DecodeJSON[[]model.Todo](t, rec)
			if len(todos) != 10 {
				t.Fatalf("got %d todos, want 10", len(todos))
			}
			for i, todo := range todos {
				if todo.ID != f.todos[i].ID {
					t.Errorf("todo %d: got id %d, want %d", i, todo.ID, f.todos[i].ID)
				}
			}
		})
	}
}

func TestListTodosPagination(t *testing.T) {
	f := newTodosFixture(t)

	rec := f.ts.Do(t, http.MethodGet, "/v2/todos?page=2&results_per_page=4", nil, f.token)
	testutil.AssertStatus(t, rec, http.StatusOK)

	todos := testutil.DecodeJSON[[]model.Todo](t, rec)
	if len(todos) != 4 || todos[0].ID != f.todos[4].ID {
		t.Fatalf("unexpected page: %+v", todos)
	}

	rec = f.ts.Do(t, http.MethodGet, "/v2/todos?page=x", nil, f.token)
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestListTodosEmpty(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)
	_, token := ts.CreateUser(t, "empty@example.com")

	rec := ts.Do(t, http.MethodGet, "/v2/todos", nil, token)
	testutil.AssertStatus(t, rec, http.StatusOK)

	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body: got %q, want an empty array", body)
	}
}

func TestGetTodo(t *testing.T) {
	for _, v := range versions {
		t.Run(v, func(t *testing.T) {
			f := newTodosFixture(t)
			want := f.todos[0]

			rec := f.ts.Do(t, http.MethodGet, fmt.Sprintf("%s/todos/%d", v, want.ID), nil, f.token)
			testutil.AssertStatus(t, rec, http.StatusOK)

			got := testutil.DecodeJSON[model.Todo](t, rec)
			if got.ID != want.ID || got.Title != want.Title || got.CreatedBy != want.CreatedBy {
				t.Errorf("got %+v, want %+v", got, want)
			}

			rec = f.ts.Do(t, http.MethodGet, v+"/todos/100", nil, f.token)
			testutil.AssertStatus(t, rec, http.StatusNotFound)
			if msg := testutil.ErrorMessage(t, rec); msg != "Couldn't find Todo with 'id'=100" {
				t.Errorf("message: got %q", msg)
			}
		})
	}
}

func TestCreateTodo(t *testing.T) {
	for _, v := range versions {
		t.Run(v, func(t *testing.T) {
			f := newTodosFixture(t)

			rec := f.ts.Do(t, http.MethodPost, v+"/todos", map[string]any{"title": "Learn Elm", "created_by": "1"}, f.token)
			testutil.AssertStatus(t, rec, http.StatusCreated)

			todo := testutil.DecodeJSON[model.Todo](t, rec)
			if todo.Title != "Learn Elm" || todo.CreatedBy != "1" || todo.ID == 0 {
				t.Errorf("unexpected todo %+v", todo)
			}
			if todo.CreatedAt.IsZero() || todo.UpdatedAt.IsZero() {
				t.Errorf("timestamps not set: %+v", todo)
			}
		})
	}
}

func TestCreateTodoValidation(t *testing.T) {
	f := newTodosFixture(t)

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{name: "missing both", body: map[string]any{}, message: "Validation failed: Title can't be blank, Created by can't be blank"},
		{name: "missing owner", body: map[string]any{"title": "Foobar"}, message: "Validation failed: Created by can't be blank"},
		{name: "blank title", body: map[string]any{"title": " ", "created_by": "1"}, message: "Validation failed: Title can't be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.ts.Do(t, http.MethodPost, "/v1/todos", tt.body, f.token)
			testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)

			if msg := testutil.ErrorMessage(t, rec); msg != tt.message {
				t.Errorf("message: got %q, want %q", msg, tt.message)
			}
		})
	}
}

func TestCreateTodoMalformedJSON(t *testing.T) {
	f := newTodosFixture(t)

	rec := f.ts.Do(t, http.MethodPost, "/v1/todos", `{"title":`, f.token)
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateTodo(t *testing.T) {
	for _, v := range versions {
		t.Run(v, func(t *testing.T) {
			f := newTodosFixture(t)
			path := fmt.Sprintf("%s/todos/%d", v, f.todos[0].ID)

			rec := f.ts.Do(t, http.MethodPut, path, map[string]any{"title": "Shopping"}, f.token)
			testutil.AssertStatus(t, rec, http.StatusNoContent)
			if rec.Body.Len() != 0 {
				t.Errorf("body should be empty, got %q", rec.Body.String())
			}

			rec = f.ts.Do(t, http.MethodGet, path, nil, f.token)
			got := testutil.DecodeJSON[model.Todo](t, rec)
			if got.Title != "Shopping" || got.CreatedBy != f.todos[0].CreatedBy {
				t.Errorf("got %+v", got)
			}

			rec = f.ts.Do(t, http.MethodPut, v+"/todos/100", map[string]any{"title": "Shopping"}, f.token)
			testutil.AssertStatus(t, rec, http.StatusNotFound)

			rec = f.ts.Do(t, http.MethodPut, path, map[string]any{"title": ""}, f.token)
			testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
			if msg := testutil.ErrorMessage(t, rec); msg != "Validation failed: Title can't be blank" {
				t.Errorf("message: got %q", msg)
			}
		})
	}
}

func TestDeleteTodo(t *testing.T) {
	for _, v := range versions {
		t.Run(v, func(t *testing.T) {
			f := newTodosFixture(t)
			path := fmt.Sprintf("%s/todos/%d", v, f.todos[0].ID)

			rec := f.ts.Do(t, http.MethodDelete, path, nil, f.token)
			testutil.AssertStatus(t, rec, http.StatusNoContent)
			if rec.Body.Len() != 0 {
				t.Errorf("body should be empty, got %q", rec.Body.String())
			}

			rec = f.ts.Do(t, http.MethodGet, path, nil, f.token)
			testutil.AssertStatus(t, rec, http.StatusNotFound)

			rec = f.ts.Do(t, http.MethodDelete, path, nil, f.token)
			testutil.AssertStatus(t, rec, http.StatusNotFound)
		})
	}
}

func TestDeleteTodoRemovesItems(t *testing.T) {
	f := newTodosFixture(t)
	todo := f.todos[0]
	items := f.ts.CreateItems(t, todo.ID, 3)

	rec := f.ts.Do(t, http.MethodDelete, fmt.Sprintf("/v1/todos/%d", todo.ID), nil, f.token)
	testutil.AssertStatus(t, rec, http.StatusNoContent)

	_, err := f.ts.Repos.Items.GetItem(t.Context(), todo.ID, items[0].ID)
	if err == nil {
		t.Fatal("items should be deleted with their todo")
	}
}
