// Seeds the development fixture: one user ("Davud") and two todos
// owned by them. Intended for local setups and the smoke-test
// scenario, not production.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/david-morgenstern/thundervarg/internal/config"
	"github.com/david-morgenstern/thundervarg/internal/db"
	"github.com/david-morgenstern/thundervarg/internal/model"
	"github.com/david-morgenstern/thundervarg/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		slog.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}

	hash, err := service.HashPassword("admin")
	if err != nil {
		slog.Error("hashing failed", "error", err)
		os.Exit(1)
	}

	user, err := store.CreateUser(ctx, "Davud", hash, false)
	if err != nil {
		if db.IsUniqueViolation(err) {
			slog.Info("seed user already exists, nothing to do")
			return
		}
		slog.Error("seed user failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed user created", "id", user.ID, "name", user.Name)

	todos := []model.CreateTodoRequest{
		{Name: "Push ups", Description: "Do many many push ups repeatedly.", OwnerID: &user.ID},
		{Name: "Pull ups", Description: "Do not so many pull ups repeatedly.", OwnerID: &user.ID},
	}
	for _, req := range todos {
		todo, err := store.CreateTodo(ctx, req)
		if err != nil {
			slog.Error("seed todo failed", "name", req.Name, "error", err)
			os.Exit(1)
		}
		slog.Info("seed todo created", "id", todo.ID, "name", todo.Name)
	}
}
