package repository

import (
	"context"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/lib/pagination"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/pkg/errors"
)

// ItemStore persists Items. Every lookup is scoped to the parent todo.
type ItemStore interface {
	ListItems(ctx context.Context, todoID int64, w pagination.Window) ([]model.Item, error)
	GetItem(ctx context.Context, todoID, id int64) (*model.Item, error)
	CreateItem(ctx context.Context, item *model.Item) error
	UpdateItem(ctx context.Context, item *model.Item) error
	DeleteItem(ctx context.Context, todoID, id int64) error
}

type ItemRepository struct {
	q database.Querier
}

func NewItemRepository(q database.Querier) *ItemRepository {
	return &ItemRepository{q: q}
}

const itemColumns = `id, todo_id, name, done, created_at, updated_at`

func scanItem(row database.Row, item *model.Item) error {
	return row.Scan(&item.ID, &item.TodoID, &item.Name, &item.Done, &item.CreatedAt, &item.UpdatedAt)
}

// ListItems returns the todo's items in creation order, cut to w.
func (r *ItemRepository) ListItems(ctx context.Context, todoID int64, w pagination.Window) ([]model.Item, error) {
	items := []model.Item{}
	if w.Empty {
		return items, nil
	}

	query, args := windowClause(
		`SELECT `+itemColumns+` FROM items WHERE todo_id = $1 ORDER BY id ASC`,
		[]any{todoID}, w, 2,
	)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list items")
	}
	defer rows.Close()

	for rows.Next() {
		var item model.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, errors.Wrap(err, "scan item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list items")
	}

	return items, nil
}

func (r *ItemRepository) GetItem(ctx context.Context, todoID, id int64) (*model.Item, error) {
	var item model.Item
	row := r.q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1 AND todo_id = $2`,
		id, todoID,
	)
	if err := scanItem(row, &item); err != nil {
		return nil, scanErr(err, "get item")
	}
	return &item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item *model.Item) error {
	ts := now()
	row := r.q.QueryRow(ctx,
		`INSERT INTO items (todo_id, name, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		item.TodoID, item.Name, item.Done, ts, ts,
	)
	if err := row.Scan(&item.ID); err != nil {
		return errors.Wrap(err, "create item")
	}
	item.CreatedAt = ts
	item.UpdatedAt = ts
	return nil
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item *model.Item) error {
	ts := now()
	affected, err := r.q.Exec(ctx,
		`UPDATE items SET name = $1, done = $2, updated_at = $3 WHERE id = $4 AND todo_id = $5`,
		item.Name, item.Done, ts, item.ID, item.TodoID,
	)
	if err := affectedErr(affected, err, "update item"); err != nil {
		return err
	}
	item.UpdatedAt = ts
	return nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, todoID, id int64) error {
	affected, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1 AND todo_id = $2`, id, todoID)
	return affectedErr(affected, err, "delete item")
}
