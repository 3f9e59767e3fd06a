// ================== internal/features/todos/handler.go ==================
package todos

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/memtodo/internal/pkg/logger"
	"github.com/xyz-asif/memtodo/internal/pkg/response"
	"github.com/xyz-asif/memtodo/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List todos
// @Description Get every todo in creation order
// @Tags todos
// @Produce json
// @Success 200 {array} Todo
// @Router /todos [get]
func (h *Handler) List(c *gin.Context) {
	response.Success(c, h.repo.List())
}

// Get godoc
// @Summary Get a todo by ID
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID (UUID)"
// @Success 200 {object} Todo
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	todo := h.repo.GetByID(c.Param("id"))
	if todo == nil {
		response.NotFound(c, "Todo not found")
		return
	}

	response.Success(c, todo)
}

// Create godoc
// @Summary Create a new todo
// @Tags todos
// @Accept json
// @Produce json
// @Param request body CreateTodoRequest true "Todo creation data"
// @Success 201 {object} Todo
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /todos [post]
func (h *Handler) Create(c *gin.Context) {
	body, err := decodeBody(c.Request.Body)
	if err != nil {
		response.BindJSONError(c, err.Error())
		return
	}

	req, err := ValidateCreateTodo(body)
	if err != nil {
		respondValidation(c, err)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	response.Created(c, h.repo.Create(req))
}

// Update godoc
// @Summary Update a todo
// @Description Update any of title, description and completed on an existing todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID (UUID)"
// @Param request body UpdateTodoRequest true "Todo update data"
// @Success 200 {object} Todo
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	body, err := decodeBody(c.Request.Body)
	if err != nil {
		response.BindJSONError(c, err.Error())
		return
	}

	req, err := ValidateUpdateTodo(body)
	if err != nil {
		respondValidation(c, err)
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		req.Description = &desc
	}

	todo := h.repo.Update(c.Param("id"), req)
	if todo == nil {
		response.NotFound(c, "Todo not found")
		return
	}

	response.Success(c, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Param id path string true "Todo ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if !h.repo.Delete(c.Param("id")) {
		response.NotFound(c, "Todo not found")
		return
	}

	response.NoContent(c)
}

func respondValidation(c *gin.Context, err error) {
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		response.ValidationFailed(c, fieldErrs)
		return
	}
	logger.Error("unexpected validation error: %v", err)
	response.InternalServerError(c, "Internal server error")
}
