package handler

import (
	"net/http"

	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
)

type TodoHandler struct {
	Handler
	todos *service.TodoService
}

func NewTodoHandler(s *server.Server, todos *service.TodoService) *TodoHandler {
	return &TodoHandler{
		Handler: NewHandler(s),
		todos:   todos,
	}
}

// ListTodos lists the caller's todos.
func (h *TodoHandler) ListTodos(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.ListTodosPayload) ([]model.Todo, error) {
		return h.todos.ListTodos(c.Request().Context(), middleware.GetUserID(c), payload)
	}, http.StatusOK, &model.ListTodosPayload{})(c)
}

func (h *TodoHandler) GetTodo(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.GetTodoPayload) (*model.Todo, error) {
		return h.todos.GetTodo(c.Request().Context(), payload.ID)
	}, http.StatusOK, &model.GetTodoPayload{})(c)
}

func (h *TodoHandler) CreateTodo(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.CreateTodoPayload) (*model.Todo, error) {
		return h.todos.CreateTodo(c.Request().Context(), payload)
	}, http.StatusCreated, &model.CreateTodoPayload{})(c)
}

func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, payload *model.UpdateTodoPayload) error {
		return h.todos.UpdateTodo(c.Request().Context(), payload)
	}, http.StatusNoContent, &model.UpdateTodoPayload{})(c)
}

func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, payload *model.DeleteTodoPayload) error {
		return h.todos.DeleteTodo(c.Request().Context(), payload.ID)
	}, http.StatusNoContent, &model.DeleteTodoPayload{})(c)
}
