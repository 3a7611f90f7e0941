package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo_tracker/internal/model"
	"todo_tracker/internal/repository/repotest"
	"todo_tracker/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthService(users *repotest.Users) (AuthService, *utils.JWTUtil) {
	jwtUtil := utils.NewJWTUtil("secret", 20*time.Minute)
	return NewAuthService(users, jwtUtil, discardLogger()), jwtUtil
}

func registerRequest(username, role string) model.CreateUserRequest {
	return model.CreateUserRequest{
		Username:  username,
		Email:     username + "@email.com",
		FirstName: "Eric",
		LastName:  "Roby",
		Password:  "testpassword",
		Role:      role,
	}
}

func TestAuthService_Register(t *testing.T) {
	users := repotest.NewUsers()
	svc, _ := newAuthService(users)

	user, err := svc.Register(context.Background(), registerRequest("codingwithrobytest", "admin"))
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "testpassword", stored.HashedPassword)
	assert.True(t, utils.CheckPasswordHash("testpassword", stored.HashedPassword))
	assert.Equal(t, "admin", stored.Role)
	assert.True(t, stored.IsActive)
}

func TestAuthService_Register_StoresRoleVerbatim(t *testing.T) {
	users := repotest.NewUsers()
	svc, _ := newAuthService(users)

	user, err := svc.Register(context.Background(), registerRequest("bob", "super-duper"))
	require.NoError(t, err)
	assert.Equal(t, "super-duper", user.Role)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	users := repotest.NewUsers()
	svc, _ := newAuthService(users)

	_, err := svc.Register(context.Background(), registerRequest("bob", "user"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest("bob", "user"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Authenticate(t *testing.T) {
	users := repotest.NewUsers()
	svc, _ := newAuthService(users)
	_, err := svc.Register(context.Background(), registerRequest("bob", "user"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantUser bool
	}{
		{"valid", "bob", "testpassword", true},
		{"wrong password", "bob", "wrongpassword", false},
		{"unknown user", "alice", "testpassword", false},
		{"username is exact match", "Bob", "testpassword", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantUser, user != nil)
		})
	}
}

func TestAuthService_Authenticate_StorageError(t *testing.T) {
	users := repotest.NewUsers()
	users.Err = errors.New("connection reset")
	svc, _ := newAuthService(users)

	user, err := svc.Authenticate(context.Background(), "bob", "testpassword")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestAuthService_Login(t *testing.T) {
	users := repotest.NewUsers()
	svc, jwtUtil := newAuthService(users)
	registered, err := svc.Register(context.Background(), registerRequest("bob", "user"))
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "bob", "testpassword")
	require.NoError(t, err)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Subject)
	assert.Equal(t, registered.ID, *claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	users := repotest.NewUsers()
	svc, _ := newAuthService(users)
	_, err := svc.Register(context.Background(), registerRequest("bob", "user"))
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "bob", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_SeedFromFile(t *testing.T) {
	users := repotest.NewUsers()
	svc, _ := newAuthService(users)
	_, err := svc.Register(context.Background(), registerRequest("existing", "user"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "users.yaml")
	content := `users:
  - username: admin
    email: admin@example.com
    first_name: Ada
    last_name: Admin
    password: adminpass
    role: admin
  - username: existing
    email: existing@example.com
    first_name: Ex
    last_name: Isting
    password: otherpass
    role: admin
  - username: ""
    password: nope
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, svc.SeedFromFile(context.Background(), path))

	admin, err := svc.Authenticate(context.Background(), "admin", "adminpass")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Role)

	existing, err := users.FindByUsername(context.Background(), "existing")
	require.NoError(t, err)
	assert.Equal(t, "user", existing.Role)
	assert.True(t, utils.CheckPasswordHash("testpassword", existing.HashedPassword))
}

func TestAuthService_SeedFromFile_EmptyPath(t *testing.T) {
	svc, _ := newAuthService(repotest.NewUsers())
	assert.NoError(t, svc.SeedFromFile(context.Background(), ""))
}

func TestAuthService_SeedFromFile_Missing(t *testing.T) {
	svc, _ := newAuthService(repotest.NewUsers())
	assert.Error(t, svc.SeedFromFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml")))
}
