package service

import (
	"context"
	"errors"
	"sort"

	"github.com/deppfellow/todo-api/internal/lib/pagination"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
)

// memStore is an in-memory TodoStore, ItemStore and UserStore.
type memStore struct {
	nextID int64
	todos  map[int64]model.Todo
	items  map[int64]model.Item
	users  map[int64]model.User
}

func newMemStore() *memStore {
	return &memStore{
		todos: map[int64]model.Todo{},
		items: map[int64]model.Item{},
		users: map[int64]model.User{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) ListTodos(_ context.Context, owner string, w pagination.Window) ([]model.Todo, error) {
	out := []model.Todo{}
	for _, t := range m.todos {
		if t.CreatedBy == owner {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pagination.Apply(out, w), nil
}

func (m *memStore) GetTodo(_ context.Context, id int64) (*model.Todo, error) {
	t, ok := m.todos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) CreateTodo(_ context.Context, todo *model.Todo) error {
	todo.ID = m.id()
	m.todos[todo.ID] = *todo
	return nil
}

func (m *memStore) UpdateTodo(_ context.Context, todo *model.Todo) error {
	if _, ok := m.todos[todo.ID]; !ok {
		return repository.ErrNotFound
	}
	m.todos[todo.ID] = *todo
	return nil
}

func (m *memStore) DeleteTodo(_ context.Context, id int64) error {
	if _, ok := m.todos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.todos, id)
	for itemID, it := range m.items {
		if it.TodoID == id {
			delete(m.items, itemID)
		}
	}
	return nil
}

func (m *memStore) ListItems(_ context.Context, todoID int64, w pagination.Window) ([]model.Item, error) {
	out := []model.Item{}
	for _, it := range m.items {
		if it.TodoID == todoID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pagination.Apply(out, w), nil
}

func (m *memStore) GetItem(_ context.Context, todoID, id int64) (*model.Item, error) {
	it, ok := m.items[id]
	if !ok || it.TodoID != todoID {
		return nil, repository.ErrNotFound
	}
	return &it, nil
}

func (m *memStore) CreateItem(_ context.Context, item *model.Item) error {
	if _, ok := m.todos[item.TodoID]; !ok {
		return errors.New("foreign key violation")
	}
	item.ID = m.id()
	m.items[item.ID] = *item
	return nil
}

func (m *memStore) UpdateItem(_ context.Context, item *model.Item) error {
	if _, ok := m.items[item.ID]; !ok {
		return repository.ErrNotFound
	}
	m.items[item.ID] = *item
	return nil
}

func (m *memStore) DeleteItem(ctx context.Context, todoID, id int64) error {
	if _, err := m.GetItem(ctx, todoID, id); err != nil {
		return err
	}
	delete(m.items, id)
	return nil
}

var errDuplicateEmail = errors.New("duplicate email")

func (m *memStore) CreateUser(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return errDuplicateEmail
		}
	}
	user.ID = m.id()
	m.users[user.ID] = *user
	return nil
}

func (m *memStore) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}
