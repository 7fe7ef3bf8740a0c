package model

import "time"

// User is the identity record. The stored bcrypt digest never
// serializes to JSON.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Disabled bool   `json:"disabled"`
}

type UserDeleteResponse struct {
	Deleted *User `json:"deleted"`
}
