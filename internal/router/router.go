// Package router builds the echo instance: global middleware, system routes,
// the auth endpoints and the versioned API groups.
package router

import (
	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, services)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerAuthRoutes(router, h)

	registerV1Routes(router.Group("/v1", middlewares.Auth.RequireAuth), h)
	registerV2Routes(router.Group("/v2", middlewares.Auth.RequireAuth), h)

	return router
}

func registerAuthRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/signup", h.Auth.Signup)
	r.POST("/auth/login", h.Auth.Login)
}
