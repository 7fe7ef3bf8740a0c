package model

import "time"

// Todo is a task record. created_at is always server-assigned; due_date
// is client-supplied and optional. owner_id is nullable in the schema
// but expected in practice.
type Todo struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     *int64     `json:"owner_id"`
}

type CreateTodoRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     *int64     `json:"owner_id"`
}

// UpdateTodoRequest carries a partial update. Nil means "not supplied";
// only non-nil fields are merged into the stored record.
type UpdateTodoRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     *int64     `json:"owner_id"`
}

type TodoDeleteResponse struct {
	Deleted *Todo `json:"deleted"`
}
