package service

import (
	"context"
	"errors"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
)

// ItemService resolves the parent todo before touching any item, so a
// missing todo is always reported before a missing item.
type ItemService struct {
	todos *TodoService
	items repository.ItemStore
}

func NewItemService(todos *TodoService, items repository.ItemStore) *ItemService {
	return &ItemService{todos: todos, items: items}
}

func (s *ItemService) ListItems(ctx context.Context, payload *model.ListItemsPayload) ([]model.Item, error) {
	if _, err := s.todos.GetTodo(ctx, payload.TodoID); err != nil {
		return nil, err
	}
	w, err := payload.Window()
	if err != nil {
		return nil, err
	}
	return s.items.ListItems(ctx, payload.TodoID, w)
}

func (s *ItemService) GetItem(ctx context.Context, todoID, id int64) (*model.Item, error) {
	if _, err := s.todos.GetTodo(ctx, todoID); err != nil {
		return nil, err
	}
	return s.findItem(ctx, todoID, id)
}

func (s *ItemService) findItem(ctx context.Context, todoID, id int64) (*model.Item, error) {
	item, err := s.items.GetItem(ctx, todoID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewRecordNotFoundError("Item", id)
		}
		return nil, err
	}
	return item, nil
}

// CreateItem adds an item to the todo; done defaults to false.
func (s *ItemService) CreateItem(ctx context.Context, payload *model.CreateItemPayload) (*model.Item, error) {
	if _, err := s.todos.GetTodo(ctx, payload.TodoID); err != nil {
		return nil, err
	}

	item := &model.Item{
		TodoID: payload.TodoID,
		Name:   payload.Name,
	}
	if payload.Done != nil {
		item.Done = *payload.Done
	}

	if err := s.items.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, payload *model.UpdateItemPayload) error {
	if _, err := s.todos.GetTodo(ctx, payload.TodoID); err != nil {
		return err
	}

	item, err := s.findItem(ctx, payload.TodoID, payload.ID)
	if err != nil {
		return err
	}

	payload.Apply(item)

	if err := s.items.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewRecordNotFoundError("Item", payload.ID)
		}
		return err
	}
	return nil
}

func (s *ItemService) DeleteItem(ctx context.Context, todoID, id int64) error {
	if _, err := s.todos.GetTodo(ctx, todoID); err != nil {
		return err
	}

	if err := s.items.DeleteItem(ctx, todoID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewRecordNotFoundError("Item", id)
		}
		return err
	}
	return nil
}
