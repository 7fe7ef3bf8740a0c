package service

import (
	"context"

	"github.com/david-morgenstern/thundervarg/internal/db"
	"github.com/david-morgenstern/thundervarg/internal/model"
)

type TodoRepo interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	GetTodoByID(ctx context.Context, id int64) (*model.Todo, error)
	ListTodosByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error)
	CreateTodo(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error)
	UpdateTodo(ctx context.Context, id int64, req model.UpdateTodoRequest) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id int64) (*model.Todo, error)
}

type TodoService struct {
	repo TodoRepo
}

func NewTodoService(repo TodoRepo) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.repo.ListTodos(ctx)
}

func (s *TodoService) Get(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := s.repo.GetTodoByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	return s.repo.ListTodosByOwner(ctx, ownerID)
}

func (s *TodoService) Create(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error) {
	todo, err := s.repo.CreateTodo(ctx, req)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrInvalidInput
		}
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, id int64, req model.UpdateTodoRequest) (*model.Todo, error) {
	todo, err := s.repo.UpdateTodo(ctx, id, req)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		if db.IsForeignKeyViolation(err) {
			return nil, ErrInvalidInput
		}
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := s.repo.DeleteTodo(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}
