package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/david-morgenstern/thundervarg/internal/model"
)

const todoColumns = "id, name, description, created_at, due_date, owner_id"

func (db *Postgres) ListTodos(ctx context.Context) ([]model.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos ORDER BY id`, todoColumns)
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.DueDate, &t.OwnerID); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (db *Postgres) GetTodoByID(ctx context.Context, id int64) (*model.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE id = $1`, todoColumns)
	var t model.Todo
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.CreatedAt,
		&t.DueDate,
		&t.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTodosByOwner returns every todo whose owner_id matches. The
// relationship is resolved with an explicit filter, never traversed
// from the user side.
func (db *Postgres) ListTodosByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE owner_id = $1 ORDER BY id`, todoColumns)
	rows, err := db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.DueDate, &t.OwnerID); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (db *Postgres) CreateTodo(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error) {
	query := fmt.Sprintf(`
		INSERT INTO todos (name, description, due_date, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, todoColumns)

	var t model.Todo
	err := db.Pool.QueryRow(ctx, query, req.Name, req.Description, req.DueDate, req.OwnerID).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.CreatedAt,
		&t.DueDate,
		&t.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTodo merges only the fields present in req into the stored
// row. Each optional field is checked for presence explicitly; absent
// fields never appear in the SET clause. created_at is immutable.
func (db *Postgres) UpdateTodo(ctx context.Context, id int64, req model.UpdateTodoRequest) (*model.Todo, error) {
	set := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if req.Name != nil {
		args = append(args, *req.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if req.DueDate != nil {
		args = append(args, *req.DueDate)
		set = append(set, fmt.Sprintf("due_date = $%d", len(args)))
	}
	if req.OwnerID != nil {
		args = append(args, *req.OwnerID)
		set = append(set, fmt.Sprintf("owner_id = $%d", len(args)))
	}

	if len(set) == 0 {
		return db.GetTodoByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE todos
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(set, ", "), len(args), todoColumns)

	var t model.Todo
	err := db.Pool.QueryRow(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.CreatedAt,
		&t.DueDate,
		&t.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *Postgres) DeleteTodo(ctx context.Context, id int64) (*model.Todo, error) {
	query := fmt.Sprintf(`
		DELETE FROM todos
		WHERE id = $1
		RETURNING %s
	`, todoColumns)

	var t model.Todo
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.CreatedAt,
		&t.DueDate,
		&t.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
