package router

import (
	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/deppfellow/todo-api/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the business API:
// health, the docs page and the embedded docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
