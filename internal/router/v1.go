package router

import (
	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerV1Routes(v1 *echo.Group, h *handler.Handlers) {
	registerTodoRoutes(v1, h)

	items := v1.Group("/todos/:todo_id/items")
	items.GET("", h.Item.ListItems)
	items.POST("", h.Item.CreateItem)
	items.GET("/:id", h.Item.GetItem)
	items.PUT("/:id", h.Item.UpdateItem)
	items.DELETE("/:id", h.Item.DeleteItem)
}

func registerTodoRoutes(g *echo.Group, h *handler.Handlers) {
	todos := g.Group("/todos")
	todos.GET("", h.Todo.ListTodos)
	todos.POST("", h.Todo.CreateTodo)
	todos.GET("/:id", h.Todo.GetTodo)
	todos.PUT("/:id", h.Todo.UpdateTodo)
	todos.DELETE("/:id", h.Todo.DeleteTodo)
}
