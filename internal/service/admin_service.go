package service

import (
	"context"
	"errors"
	"fmt"

	"todo_tracker/internal/model"
	"todo_tracker/internal/repository"
)

// ErrNotAdmin is returned when a non-admin calls an admin operation
var ErrNotAdmin = errors.New("admin role required")

// AdminService bypasses owner-scoping for callers whose role is exactly "admin"
type AdminService interface {
	ListAll(ctx context.Context, identity model.Identity) ([]model.Todo, error)
	DeleteAny(ctx context.Context, identity model.Identity, todoID int64) error
}

type adminService struct {
	repo repository.TodoRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(repo repository.TodoRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) ListAll(ctx context.Context, identity model.Identity) ([]model.Todo, error) {
	if !identity.IsAdmin() {
		return nil, ErrNotAdmin
	}
	todos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all todos for admin: %w", err)
	}
	return todos, nil
}

func (s *adminService) DeleteAny(ctx context.Context, identity model.Identity, todoID int64) error {
	if !identity.IsAdmin() {
		return ErrNotAdmin
	}
	if err := s.repo.Delete(ctx, todoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo for admin: %w", err)
	}
	return nil
}
