// ================== internal/features/todos/model.go ==================
package todos

import (
	"time"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Todo represents a todo item
// @Description Todo item with all its properties
type Todo struct {
	ID          string    `json:"id" example:"3f2504e0-4f89-11d3-9a0c-0305e82c3301"`
	Title       string    `json:"title" example:"Buy groceries"`
	Description string    `json:"description" example:"Get milk, bread, and eggs"`
	Completed   bool      `json:"completed" example:"false"`
	CreatedAt   time.Time `json:"createdAt" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2023-01-01T00:00:00Z"`
}

// CreateTodoRequest represents todo creation data
// @Description Data required to create a new todo
type CreateTodoRequest struct {
	Title       string `json:"title" example:"Buy groceries"`
	Description string `json:"description,omitempty" example:"Get milk, bread, and eggs"`
}

// UpdateTodoRequest represents todo update data. A nil field was not sent
// and leaves the stored value alone.
// @Description Data for updating an existing todo; at least one field is required
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty" example:"Buy groceries"`
	Description *string `json:"description,omitempty" example:"Get milk, bread, and eggs"`
	Completed   *bool   `json:"completed,omitempty" example:"true"`
}

func (r UpdateTodoRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil
}
