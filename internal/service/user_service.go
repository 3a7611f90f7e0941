package service

import (
	"context"
	"errors"
	"fmt"

	"todo_tracker/internal/model"
	"todo_tracker/internal/repository"
	"todo_tracker/internal/utils"
)

var (
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrUserInconsistent means a valid token names a user row that is gone
	ErrUserInconsistent = errors.New("user from token no longer exists")
)

// UserService serves the caller's own account
type UserService interface {
	GetSelf(ctx context.Context, identity model.Identity) (*model.User, error)
	ChangePassword(ctx context.Context, identity model.Identity, req model.PasswordChangeRequest) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetSelf(ctx context.Context, identity model.Identity) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user id %d: %w", identity.UserID, ErrUserInconsistent)
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new hash.
// The new password's length is checked by request binding.
func (s *userService) ChangePassword(ctx context.Context, identity model.Identity, req model.PasswordChangeRequest) error {
	user, err := s.GetSelf(ctx, identity)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		return ErrIncorrectPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("user id %d: %w", user.ID, ErrUserInconsistent)
		}
		return fmt.Errorf("failed to update password in repo: %w", err)
	}
	return nil
}
