package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API reference UI. The page loads
// /static/openapi.json, so both assets ship inside the binary.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := static.FS.ReadFile("openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
