package service

import (
	"context"
	"errors"
	"fmt"

	"todo_tracker/internal/model"
	"todo_tracker/internal/repository"
)

// ErrTodoNotFound covers both a missing todo and one owned by someone else
var ErrTodoNotFound = errors.New("todo not found")

// TodoService is the owner-scoped task store
type TodoService interface {
	ListOwned(ctx context.Context, identity model.Identity) ([]model.Todo, error)
	GetOwned(ctx context.Context, identity model.Identity, todoID int64) (*model.Todo, error)
	Create(ctx context.Context, identity model.Identity, req model.TodoRequest) (*model.Todo, error)
	Update(ctx context.Context, identity model.Identity, todoID int64, req model.TodoRequest) error
	Delete(ctx context.Context, identity model.Identity, todoID int64) error
}

type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) ListOwned(ctx context.Context, identity model.Identity) ([]model.Todo, error) {
	todos, err := s.repo.FindByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *todoService) GetOwned(ctx context.Context, identity model.Identity, todoID int64) (*model.Todo, error) {
	todo, err := s.repo.FindByIDAndOwner(ctx, todoID, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// Create stores a todo owned by the caller
func (s *todoService) Create(ctx context.Context, identity model.Identity, req model.TodoRequest) (*model.Todo, error) {
	todo := &model.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     identity.UserID,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo in repo: %w", err)
	}
	return todo, nil
}

// Update replaces all four mutable fields of a todo the caller owns
func (s *todoService) Update(ctx context.Context, identity model.Identity, todoID int64, req model.TodoRequest) error {
	todo := &model.Todo{
		ID:          todoID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     identity.UserID,
	}
	if err := s.repo.UpdateByOwner(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to update todo in repo: %w", err)
	}
	return nil
}

func (s *todoService) Delete(ctx context.Context, identity model.Identity, todoID int64) error {
	if err := s.repo.DeleteByOwner(ctx, todoID, identity.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo in repo: %w", err)
	}
	return nil
}
