package model

import "github.com/deppfellow/todo-api/internal/validation"

// Item is a sub-task nested under a Todo.
type Item struct {
	Base
	TodoID int64  `json:"todo_id"`
	Name   string `json:"name"`
	Done   bool   `json:"done"`
}

// ------------------------------------------------------------

type ListItemsPayload struct {
	TodoID int64 `param:"todo_id" json:"-"`
	PageQuery
}

func (p *ListItemsPayload) Validate() error {
	return p.Resolve()
}

// ------------------------------------------------------------

type GetItemPayload struct {
	TodoID int64 `param:"todo_id" json:"-"`
	ID     int64 `param:"id" json:"-"`
}

func (p *GetItemPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type CreateItemPayload struct {
	TodoID int64  `param:"todo_id" json:"-"`
	Name   string `json:"name" validate:"notblank"`
	Done   *bool  `json:"done"`
}

func (p *CreateItemPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// UpdateItemPayload is a partial update: nil fields are left untouched.
type UpdateItemPayload struct {
	TodoID int64   `param:"todo_id" json:"-"`
	ID     int64   `param:"id" json:"-"`
	Name   *string `json:"name" validate:"omitempty,notblank"`
	Done   *bool   `json:"done"`
}

func (p *UpdateItemPayload) Validate() error {
	return validation.Struct(p)
}

// Apply copies the provided fields onto it.
func (p *UpdateItemPayload) Apply(it *Item) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Done != nil {
		it.Done = *p.Done
	}
}

// ------------------------------------------------------------

type DeleteItemPayload struct {
	TodoID int64 `param:"todo_id" json:"-"`
	ID     int64 `param:"id" json:"-"`
}

func (p *DeleteItemPayload) Validate() error {
	return nil
}
