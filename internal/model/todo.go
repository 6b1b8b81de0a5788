package model

import "github.com/deppfellow/todo-api/internal/validation"

// Todo is a top-level task container owned by a user.
type Todo struct {
	Base
	Title     string `json:"title"`
	CreatedBy string `json:"created_by"`
}

// ------------------------------------------------------------

type ListTodosPayload struct {
	PageQuery
}

func (p *ListTodosPayload) Validate() error {
	return p.Resolve()
}

// ------------------------------------------------------------

type GetTodoPayload struct {
	ID int64 `param:"id" json:"-"`
}

func (p *GetTodoPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type CreateTodoPayload struct {
	Title     string `json:"title" validate:"notblank"`
	CreatedBy string `json:"created_by" validate:"notblank"`
}

func (p *CreateTodoPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// UpdateTodoPayload is a partial update: nil fields are left untouched.
type UpdateTodoPayload struct {
	ID        int64   `param:"id" json:"-"`
	Title     *string `json:"title" validate:"omitempty,notblank"`
	CreatedBy *string `json:"created_by" validate:"omitempty,notblank"`
}

func (p *UpdateTodoPayload) Validate() error {
	return validation.Struct(p)
}

// Apply copies the provided fields onto t.
func (p *UpdateTodoPayload) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.CreatedBy != nil {
		t.CreatedBy = *p.CreatedBy
	}
}

// ------------------------------------------------------------

type DeleteTodoPayload struct {
	ID int64 `param:"id" json:"-"`
}

func (p *DeleteTodoPayload) Validate() error {
	return nil
}
