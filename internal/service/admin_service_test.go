package service

import (
	"context"
	"testing"

	"todo_tracker/internal/model"
	"todo_tracker/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_ListAll(t *testing.T) {
	repo := repotest.NewTodos()
	todos := NewTodoService(repo)
	svc := NewAdminService(repo)
	_, err := todos.Create(context.Background(), owner, learnToCode())
	require.NoError(t, err)
	_, err = todos.Create(context.Background(), stranger, learnToCode())
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAdminService_RequiresExactAdminRole(t *testing.T) {
	svc := NewAdminService(repotest.NewTodos())

	for _, role := range []string{"user", "Admin", "admin ", "administrator", ""} {
		t.Run(role, func(t *testing.T) {
			caller := model.Identity{Username: "x", UserID: 9, Role: role}
			_, err := svc.ListAll(context.Background(), caller)
			assert.ErrorIs(t, err, ErrNotAdmin)
			assert.ErrorIs(t, svc.DeleteAny(context.Background(), caller, 1), ErrNotAdmin)
		})
	}
}

func TestAdminService_DeleteAny(t *testing.T) {
	repo := repotest.NewTodos()
	todos := NewTodoService(repo)
	svc := NewAdminService(repo)
	created, err := todos.Create(context.Background(), owner, learnToCode())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAny(context.Background(), admin, created.ID))
	_, ok := repo.Get(created.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.DeleteAny(context.Background(), admin, created.ID), ErrTodoNotFound)
}
