package service

import (
	"context"
	"testing"

	"todo_tracker/internal/model"
	"todo_tracker/internal/repository/repotest"
	"todo_tracker/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, users *repotest.Users) model.Identity {
	t.Helper()
	auth, _ := newAuthService(users)
	user, err := auth.Register(context.Background(), registerRequest("codingwithrobytest", "admin"))
	require.NoError(t, err)
	return model.Identity{Username: user.Username, UserID: user.ID, Role: user.Role}
}

func TestUserService_GetSelf(t *testing.T) {
	users := repotest.NewUsers()
	identity := seedUser(t, users)
	svc := NewUserService(users)

	user, err := svc.GetSelf(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, "codingwithrobytest", user.Username)
	assert.Equal(t, "codingwithrobytest@email.com", user.Email)
}

func TestUserService_GetSelf_RowGone(t *testing.T) {
	users := repotest.NewUsers()
	identity := seedUser(t, users)
	users.Remove(identity.UserID)
	svc := NewUserService(users)

	_, err := svc.GetSelf(context.Background(), identity)
	assert.ErrorIs(t, err, ErrUserInconsistent)
}

func TestUserService_ChangePassword(t *testing.T) {
	users := repotest.NewUsers()
	identity := seedUser(t, users)
	svc := NewUserService(users)

	err := svc.ChangePassword(context.Background(), identity, model.PasswordChangeRequest{
		Password:    "testpassword",
		NewPassword: "newpassword",
	})
	require.NoError(t, err)

	stored, _ := users.FindByID(context.Background(), identity.UserID)
	assert.True(t, utils.CheckPasswordHash("newpassword", stored.HashedPassword))
	assert.False(t, utils.CheckPasswordHash("testpassword", stored.HashedPassword))
}

func TestUserService_ChangePassword_WrongCurrentLeavesHash(t *testing.T) {
	users := repotest.NewUsers()
	identity := seedUser(t, users)
	svc := NewUserService(users)
	before, _ := users.FindByID(context.Background(), identity.UserID)

	err := svc.ChangePassword(context.Background(), identity, model.PasswordChangeRequest{
		Password:    "wrongpassword",
		NewPassword: "newpassword",
	})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	after, _ := users.FindByID(context.Background(), identity.UserID)
	assert.Equal(t, before.HashedPassword, after.HashedPassword)
}
