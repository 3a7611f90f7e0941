package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"todo_tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "username", "email", "first_name", "last_name", "hashed_password", "role", "is_active"}

func newUserRepoMock(t *testing.T) (pgxmock.PgxPoolIface, UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func testUser() *model.User {
	return &model.User{
		Username:       "codingwithrobytest",
		Email:          "codingwithrobytest@email.com",
		FirstName:      "Eric",
		LastName:       "Roby",
		HashedPassword: "$2a$10$hash",
		Role:           "admin",
		IsActive:       true,
	}
}

func TestUserRepository_Create(t *testing.T) {
	mock, repo := newUserRepoMock(t)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.Username, user.Email, user.FirstName, user.LastName, user.HashedPassword, user.Role, true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock, repo := newUserRepoMock(t)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.Username, user.Email, user.FirstName, user.LastName, user.HashedPassword, user.Role, true).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	assert.ErrorIs(t, repo.Create(context.Background(), user), ErrDuplicate)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("codingwithrobytest").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(1), "codingwithrobytest", "codingwithrobytest@email.com", "Eric", "Roby", "$2a$10$hash", "admin", true))

	user, err := repo.FindByUsername(context.Background(), "codingwithrobytest")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "$2a$10$hash", user.HashedPassword)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindByID_Error(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	user, err := repo.FindByID(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET hashed_password = $1 WHERE id = $2")).
		WithArgs("$2a$10$new", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdatePassword(context.Background(), 1, "$2a$10$new"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePassword_Missing(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET hashed_password = $1 WHERE id = $2")).
		WithArgs("$2a$10$new", int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.UpdatePassword(context.Background(), 42, "$2a$10$new"), ErrNotFound)
}
