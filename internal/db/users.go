package db

import (
	"context"

	"github.com/david-morgenstern/thundervarg/internal/model"
)

func (db *Postgres) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, name, password_hash, disabled, created_at
		FROM users
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Disabled, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (db *Postgres) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, name, password_hash, disabled, created_at
		FROM users
		WHERE id = $1
	`
	var u model.User
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&u.Disabled,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *Postgres) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	query := `
		SELECT id, name, password_hash, disabled, created_at
		FROM users
		WHERE name = $1
	`
	var u model.User
	err := db.Pool.QueryRow(ctx, query, name).Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&u.Disabled,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *Postgres) CreateUser(ctx context.Context, name, passwordHash string, disabled bool) (*model.User, error) {
	query := `
		INSERT INTO users (name, password_hash, disabled)
		VALUES ($1, $2, $3)
		RETURNING id, name, password_hash, disabled, created_at
	`
	var u model.User
	err := db.Pool.QueryRow(ctx, query, name, passwordHash, disabled).Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&u.Disabled,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes the user and returns the deleted row so callers
// can echo a confirmation payload. pgx.ErrNoRows means the id was
// absent.
func (db *Postgres) DeleteUser(ctx context.Context, id int64) (*model.User, error) {
	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING id, name, password_hash, disabled, created_at
	`
	var u model.User
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&u.Disabled,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
