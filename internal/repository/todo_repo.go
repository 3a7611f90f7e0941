package repository

import (
	"context"
	"errors"
	"fmt"

	"todo_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// TodoRepository defines operations for todo data. Methods with an ownerID
// only ever see rows of that owner.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	FindByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.Todo, error)
	UpdateByOwner(ctx context.Context, todo *model.Todo) error
	DeleteByOwner(ctx context.Context, id, ownerID int64) error
	FindAll(ctx context.Context) ([]model.Todo, error)
	Delete(ctx context.Context, id int64) error
}

type todoRepository struct {
	db DBTX
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db DBTX) TodoRepository {
	return &todoRepository{db: db}
}

const todoColumns = `id, title, description, priority, complete, owner_id`

// Create inserts a new todo and sets its ID
func (r *todoRepository) Create(ctx context.Context, t *model.Todo) error {
	sql := `INSERT INTO todos (title, description, priority, complete, owner_id)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, t.Title, t.Description, t.Priority, t.Complete, t.OwnerID).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	return nil
}

// FindByOwner retrieves every todo of one owner
func (r *todoRepository) FindByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	sql := `SELECT ` + todoColumns + ` FROM todos WHERE owner_id = $1 ORDER BY id`
	return r.list(ctx, sql, ownerID)
}

// FindByIDAndOwner retrieves a todo only if ownerID owns it. Otherwise (nil, nil).
func (r *todoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.Todo, error) {
	t := &model.Todo{}
	sql := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND owner_id = $2`
	err := r.db.QueryRow(ctx, sql, id, ownerID).Scan(
		&t.ID, &t.Title, &t.Description, &t.Priority, &t.Complete, &t.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find todo by ID: %w", err)
	}
	return t, nil
}

// UpdateByOwner replaces title, description, priority and complete
func (r *todoRepository) UpdateByOwner(ctx context.Context, t *model.Todo) error {
	sql := `UPDATE todos
            SET title = $1, description = $2, priority = $3, complete = $4
            WHERE id = $5 AND owner_id = $6` // ownership is part of the match
	cmdTag, err := r.db.Exec(ctx, sql, t.Title, t.Description, t.Priority, t.Complete, t.ID, t.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByOwner removes a todo if ownerID owns it
func (r *todoRepository) DeleteByOwner(ctx context.Context, id, ownerID int64) error {
	sql := `DELETE FROM todos WHERE id = $1 AND owner_id = $2`
	return r.delete(ctx, sql, id, ownerID)
}

// FindAll retrieves todos of every owner
func (r *todoRepository) FindAll(ctx context.Context) ([]model.Todo, error) {
	sql := `SELECT ` + todoColumns + ` FROM todos ORDER BY id`
	return r.list(ctx, sql)
}

// Delete removes a todo regardless of owner
func (r *todoRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM todos WHERE id = $1`
	return r.delete(ctx, sql, id)
}

func (r *todoRepository) delete(ctx context.Context, sql string, args ...any) error {
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *todoRepository) list(ctx context.Context, sql string, args ...any) ([]model.Todo, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Complete, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan todo row: %w", err)
		}
		todos = append(todos, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todo rows: %w", err)
	}
	return todos, nil
}
