package handler

import (
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one object.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Auth    *AuthHandler
	Todo    *TodoHandler
	Item    *ItemHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Auth:    NewAuthHandler(s, services.Auth),
		Todo:    NewTodoHandler(s, services.Todos),
		Item:    NewItemHandler(s, services.Items),
	}
}
