package router

import (
	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerV2Routes exposes todos only; items stay on /v1.
func registerV2Routes(v2 *echo.Group, h *handler.Handlers) {
	registerTodoRoutes(v2, h)
}
