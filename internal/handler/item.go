package handler

import (
	"net/http"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves items nested under /todos/:todo_id.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.ListItemsPayload) ([]model.Item, error) {
		return h.items.ListItems(c.Request().Context(), payload)
	}, http.StatusOK, &model.ListItemsPayload{})(c)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.GetItemPayload) (*model.Item, error) {
		return h.items.GetItem(c.Request().Context(), payload.TodoID, payload.ID)
	}, http.StatusOK, &model.GetItemPayload{})(c)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.CreateItemPayload) (*model.Item, error) {
		return h.items.CreateItem(c.Request().Context(), payload)
	}, http.StatusCreated, &model.CreateItemPayload{})(c)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, payload *model.UpdateItemPayload) error {
		return h.items.UpdateItem(c.Request().Context(), payload)
	}, http.StatusNoContent, &model.UpdateItemPayload{})(c)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, payload *model.DeleteItemPayload) error {
		return h.items.DeleteItem(c.Request().Context(), payload.TodoID, payload.ID)
	}, http.StatusNoContent, &model.DeleteItemPayload{})(c)
}
