// Package repotest provides in-memory repositories for tests of the layers
// above storage.
package repotest

import (
	"context"
	"sort"
	"sync"

	"todo_tracker/internal/model"
	"todo_tracker/internal/repository"
)

// Users is an in-memory repository.UserRepository
type Users struct {
	mu     sync.Mutex
	rows   map[int64]model.User
	nextID int64
	// Err, when set, is returned by every call
	Err error
}

// NewUsers returns an empty user store
func NewUsers() *Users {
	return &Users{rows: make(map[int64]model.User)}
}

var _ repository.UserRepository = (*Users)(nil)

func (u *Users) Create(_ context.Context, user *model.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return u.Err
	}
	for _, existing := range u.rows {
		if existing.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	u.nextID++
	user.ID = u.nextID
	u.rows[user.ID] = *user
	return nil
}

func (u *Users) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return nil, u.Err
	}
	for _, existing := range u.rows {
		if existing.Username == username {
			found := existing
			return &found, nil
		}
	}
	return nil, nil
}

func (u *Users) FindByID(_ context.Context, id int64) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return nil, u.Err
	}
	existing, ok := u.rows[id]
	if !ok {
		return nil, nil
	}
	return &existing, nil
}

func (u *Users) UpdatePassword(_ context.Context, id int64, hashedPassword string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return u.Err
	}
	existing, ok := u.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	existing.HashedPassword = hashedPassword
	u.rows[id] = existing
	return nil
}

// Remove deletes a user row directly, bypassing the repository contract
func (u *Users) Remove(id int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.rows, id)
}

// Todos is an in-memory repository.TodoRepository
type Todos struct {
	mu     sync.Mutex
	rows   map[int64]model.Todo
	nextID int64
	// Err, when set, is returned by every call
	Err error
}

// NewTodos returns an empty todo store
func NewTodos() *Todos {
	return &Todos{rows: make(map[int64]model.Todo)}
}

var _ repository.TodoRepository = (*Todos)(nil)

func (s *Todos) Create(_ context.Context, todo *model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.nextID++
	todo.ID = s.nextID
	s.rows[todo.ID] = *todo
	return nil
}

func (s *Todos) FindByOwner(_ context.Context, ownerID int64) ([]model.Todo, error) {
	return s.filter(func(t model.Todo) bool { return t.OwnerID == ownerID })
}

func (s *Todos) FindByIDAndOwner(_ context.Context, id, ownerID int64) (*model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	t, ok := s.rows[id]
	if !ok || t.OwnerID != ownerID {
		return nil, nil
	}
	return &t, nil
}

func (s *Todos) UpdateByOwner(_ context.Context, todo *model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	t, ok := s.rows[todo.ID]
	if !ok || t.OwnerID != todo.OwnerID {
		return repository.ErrNotFound
	}
	s.rows[todo.ID] = *todo
	return nil
}

func (s *Todos) DeleteByOwner(_ context.Context, id, ownerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	t, ok := s.rows[id]
	if !ok || t.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *Todos) FindAll(_ context.Context) ([]model.Todo, error) {
	return s.filter(func(model.Todo) bool { return true })
}

func (s *Todos) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// Get returns a row directly, bypassing ownership
func (s *Todos) Get(id int64) (model.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.rows[id]
	return t, ok
}

func (s *Todos) filter(keep func(model.Todo) bool) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	todos := []model.Todo{}
	for _, t := range s.rows {
		if keep(t) {
			todos = append(todos, t)
		}
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID < todos[j].ID })
	return todos, nil
}
