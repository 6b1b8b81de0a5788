package service

import (
	"context"
	"errors"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/rs/zerolog"
)

type TodoService struct {
	todos repository.TodoStore
}

func NewTodoService(todos repository.TodoStore) *TodoService {
	return &TodoService{todos: todos}
}

// ListTodos returns the owner's todos, paginated like items.
func (s *TodoService) ListTodos(ctx context.Context, owner string, payload *model.ListTodosPayload) ([]model.Todo, error) {
	w, err := payload.Window()
	if err != nil {
		return nil, err
	}
	return s.todos.ListTodos(ctx, owner, w)
}

// GetTodo returns the todo or a 404 naming its id.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := s.todos.GetTodo(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewRecordNotFoundError("Todo", id)
		}
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) CreateTodo(ctx context.Context, payload *model.CreateTodoPayload) (*model.Todo, error) {
	todo := &model.Todo{
		Title:     payload.Title,
		CreatedBy: payload.CreatedBy,
	}

	if err := s.todos.CreateTodo(ctx, todo); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("todo_id", todo.ID).
		Msg("todo created")

	return todo, nil
}

// UpdateTodo applies only the fields present in payload.
func (s *TodoService) UpdateTodo(ctx context.Context, payload *model.UpdateTodoPayload) error {
	todo, err := s.GetTodo(ctx, payload.ID)
	if err != nil {
		return err
	}

	payload.Apply(todo)

	if err := s.todos.UpdateTodo(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewRecordNotFoundError("Todo", payload.ID)
		}
		return err
	}
	return nil
}

// DeleteTodo removes the todo and, through the schema, its items.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.todos.DeleteTodo(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewRecordNotFoundError("Todo", id)
		}
		return err
	}

	zerolog.Ctx(ctx).Info().
		Int64("todo_id", id).
		Msg("todo deleted")

	return nil
}
