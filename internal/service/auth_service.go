package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"todo_tracker/internal/model"
	"todo_tracker/internal/repository"
	"todo_tracker/internal/utils"

	"gopkg.in/yaml.v3"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("could not validate user")
)

// AuthService provides registration, credential checks and token issue
type AuthService interface {
	Register(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	SeedFromFile(ctx context.Context, path string) error
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, logger *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		logger:   logger,
	}
}

// Register creates a new user account. The role is stored exactly as
// supplied: any string is accepted, "admin" included.
func (s *authService) Register(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: hashedPassword,
		Role:           req.Role,
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Authenticate returns the user when username exists and password verifies.
// Bad credentials are (nil, nil); only storage failures are errors.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return nil, nil
	}
	return user, nil
}

// Login authenticates a user and returns a signed bearer token
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.Username, user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

type seedFile struct {
	Users []model.CreateUserRequest `yaml:"users"`
}

// SeedFromFile registers the users listed in a YAML file unless their
// username is already taken. An empty path is a no-op.
func (s *authService) SeedFromFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, req := range sf.Users {
		if req.Username == "" || req.Password == "" {
			s.logger.Warn("skipping seed user without username or password")
			continue
		}
		user, err := s.Register(ctx, req)
		if errors.Is(err, ErrUserAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", req.Username, err)
		}
		s.logger.Info("seeded user", "username", user.Username, "user_id", user.ID, "role", user.Role)
	}
	return nil
}
