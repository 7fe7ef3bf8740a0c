package service

import (
	"context"

	"github.com/david-morgenstern/thundervarg/internal/db"
	"github.com/david-morgenstern/thundervarg/internal/model"
)

type UserRepo interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, name, passwordHash string, disabled bool) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) (*model.User, error)
}

type UserService struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create hashes the plaintext before it ever reaches the store.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, req.Name, hash, req.Disabled)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
