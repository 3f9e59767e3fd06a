package todos

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xyz-asif/memtodo/internal/pkg/logger"
)

// Repository is the in-memory todo store. It owns every record; callers only
// ever get copies. Records keep their insertion order.
type Repository struct {
	mu    sync.RWMutex
	todos []Todo
	index map[string]int

	now   func() time.Time
	newID func() string
}

func NewRepository() *Repository {
	return &Repository{
		index: make(map[string]int),
		now:   defaultNow,
		newID: uuid.NewString,
	}
}

func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// List returns a snapshot of all todos in insertion order. Never nil.
func (r *Repository) List() []Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]Todo, len(r.todos))
	copy(todos, r.todos)
	return todos
}

// GetByID returns a copy of the todo, or nil if there is none with that id.
func (r *Repository) GetByID(id string) *Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil
	}
	todo := r.todos[i]
	return &todo
}

func (r *Repository) Create(req CreateTodoRequest) *Todo {
	now := r.now()
	todo := Todo{
		ID:          r.newID(),
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	r.index[todo.ID] = len(r.todos)
	r.todos = append(r.todos, todo)
	r.mu.Unlock()

	logger.Debug("todo created: %s", todo.ID)
	return &todo
}

// Update merges the fields set in req into the stored todo and refreshes
// UpdatedAt. ID and CreatedAt never change. Returns nil if id is unknown.
func (r *Repository) Update(id string, req UpdateTodoRequest) *Todo {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil
	}

	todo := r.todos[i]
	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	// the wall clock can step backwards; UpdatedAt must not
	now := r.now()
	if now.Before(todo.UpdatedAt) {
		now = todo.UpdatedAt
	}
	todo.UpdatedAt = now

	r.todos[i] = todo
	logger.Debug("todo updated: %s", id)
	return &todo
}

// Delete removes the todo and reports whether anything was removed.
func (r *Repository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false
	}

	r.todos = append(r.todos[:i], r.todos[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.todos); j++ {
		r.index[r.todos[j].ID] = j
	}

	logger.Debug("todo deleted: %s", id)
	return true
}

// Count returns the number of stored todos.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.todos)
}

// Clear drops every todo. Used to isolate tests.
func (r *Repository) Clear() {
	r.mu.Lock()
	r.todos = nil
	r.index = make(map[string]int)
	r.mu.Unlock()
}
