package repository

import (
	"context"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/lib/pagination"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/pkg/errors"
)

// TodoStore persists Todos.
type TodoStore interface {
	ListTodos(ctx context.Context, owner string, w pagination.Window) ([]model.Todo, error)
	GetTodo(ctx context.Context, id int64) (*model.Todo, error)
	CreateTodo(ctx context.Context, todo *model.Todo) error
	UpdateTodo(ctx context.Context, todo *model.Todo) error
	DeleteTodo(ctx context.Context, id int64) error
}

type TodoRepository struct {
	q database.Querier
}

func NewTodoRepository(q database.Querier) *TodoRepository {
	return &TodoRepository{q: q}
}

const todoColumns = `id, title, created_by, created_at, updated_at`

func scanTodo(row database.Row, todo *model.Todo) error {
	return row.Scan(&todo.ID, &todo.Title, &todo.CreatedBy, &todo.CreatedAt, &todo.UpdatedAt)
}

// ListTodos returns the owner's todos in creation order.
func (r *TodoRepository) ListTodos(ctx context.Context, owner string, w pagination.Window) ([]model.Todo, error) {
	todos := []model.Todo{}
	if w.Empty {
		return todos, nil
	}

	query, args := windowClause(
		`SELECT `+todoColumns+` FROM todos WHERE created_by = $1 ORDER BY id ASC`,
		[]any{owner}, w, 2,
	)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list todos")
	}
	defer rows.Close()

	for rows.Next() {
		var todo model.Todo
		if err := scanTodo(rows, &todo); err != nil {
			return nil, errors.Wrap(err, "scan todo")
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list todos")
	}

	return todos, nil
}

func (r *TodoRepository) GetTodo(ctx context.Context, id int64) (*model.Todo, error) {
	var todo model.Todo
	row := r.q.QueryRow(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id)
	if err := scanTodo(row, &todo); err != nil {
		return nil, scanErr(err, "get todo")
	}
	return &todo, nil
}

// CreateTodo inserts todo and fills in its ID and timestamps.
func (r *TodoRepository) CreateTodo(ctx context.Context, todo *model.Todo) error {
	ts := now()
	row := r.q.QueryRow(ctx,
		`INSERT INTO todos (title, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		todo.Title, todo.CreatedBy, ts, ts,
	)
	if err := row.Scan(&todo.ID); err != nil {
		return errors.Wrap(err, "create todo")
	}
	todo.CreatedAt = ts
	todo.UpdatedAt = ts
	return nil
}

// UpdateTodo writes every mutable column of todo and bumps updated_at.
func (r *TodoRepository) UpdateTodo(ctx context.Context, todo *model.Todo) error {
	ts := now()
	affected, err := r.q.Exec(ctx,
		`UPDATE todos SET title = $1, created_by = $2, updated_at = $3 WHERE id = $4`,
		todo.Title, todo.CreatedBy, ts, todo.ID,
	)
	if err := affectedErr(affected, err, "update todo"); err != nil {
		return err
	}
	todo.UpdatedAt = ts
	return nil
}

// DeleteTodo removes the todo; its items go with it (ON DELETE CASCADE).
func (r *TodoRepository) DeleteTodo(ctx context.Context, id int64) error {
	affected, err := r.q.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	return affectedErr(affected, err, "delete todo")
}
