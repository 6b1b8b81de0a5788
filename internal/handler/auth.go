package handler

import (
	"net/http"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves signup and login. Neither route requires a token.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.SignupPayload) (*model.AuthResponse, error) {
		return h.auth.Signup(c.Request().Context(), payload)
	}, http.StatusCreated, &model.SignupPayload{})(c)
}

func (h *AuthHandler) Login(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.LoginPayload) (*model.AuthResponse, error) {
		return h.auth.Login(c.Request().Context(), payload)
	}, http.StatusOK, &model.LoginPayload{})(c)
}
