package todos

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/memtodo/internal/pkg/validator"
)

const (
	msgTitleRequired       = "Title is required"
	msgTitleNotString      = "Title must be a string"
	msgTitleEmpty          = "Title cannot be empty"
	msgTitleTooLong        = "Title cannot exceed 200 characters"
	msgDescriptionNotStr   = "Description must be a string"
	msgDescriptionTooLong  = "Description cannot exceed 1000 characters"
	msgCompletedNotBoolean = "Completed must be a boolean"
	msgNoUpdateFields      = "At least one field (title, description, or completed) must be provided"
	msgInvalidID           = "Invalid ID format"
)

// ValidateCreateTodo checks a create payload and reports every broken rule.
// Values are returned untrimmed.
func ValidateCreateTodo(body requestBody) (CreateTodoRequest, error) {
	var req CreateTodoRequest
	var errs validator.FieldErrors

	if !body.has("title") || body.isNull("title") {
		errs.Add("title", msgTitleRequired)
	} else if title, ok := checkTitle(body, &errs); ok {
		req.Title = title
	}

	if body.has("description") {
		if desc, ok := checkDescription(body, &errs); ok {
			req.Description = desc
		}
	}

	return req, errs.Err()
}

// ValidateUpdateTodo checks a partial update. Only members present in the
// body are validated and carried into the request.
func ValidateUpdateTodo(body requestBody) (UpdateTodoRequest, error) {
	var req UpdateTodoRequest
	var errs validator.FieldErrors

	if !body.has("title") && !body.has("description") && !body.has("completed") {
		errs.Add("body", msgNoUpdateFields)
	}

	if body.has("title") {
		if title, ok := checkTitle(body, &errs); ok {
			req.Title = &title
		}
	}

	if body.has("description") {
		if desc, ok := checkDescription(body, &errs); ok {
			req.Description = &desc
		}
	}

	if body.has("completed") {
		if completed, ok := body.boolean("completed"); ok {
			req.Completed = &completed
		} else {
			errs.Add("completed", msgCompletedNotBoolean)
		}
	}

	return req, errs.Err()
}

func checkTitle(body requestBody, errs *validator.FieldErrors) (string, bool) {
	title, ok := body.str("title")
	switch {
	case !ok:
		errs.Add("title", msgTitleNotString)
	case validator.IsBlank(title):
		errs.Add("title", msgTitleEmpty)
	case validator.ExceedsLength(strings.TrimSpace(title), MaxTitleLength):
		errs.Add("title", msgTitleTooLong)
	default:
		return title, true
	}
	return "", false
}

func checkDescription(body requestBody, errs *validator.FieldErrors) (string, bool) {
	desc, ok := body.str("description")
	switch {
	case !ok:
		errs.Add("description", msgDescriptionNotStr)
	case validator.ExceedsLength(desc, MaxDescriptionLength):
		errs.Add("description", msgDescriptionTooLong)
	default:
		return desc, true
	}
	return "", false
}

// ValidateID only checks the shape of id. Whether it exists is the repository's business.
func ValidateID(id string) error {
	var errs validator.FieldErrors
	if !validator.IsValidUUID(id) {
		errs.Add("id", msgInvalidID)
	}
	return errs.Err()
}

// ValidateUUID rejects requests whose :id path parameter is not a UUID
// before any handler touches storage.
func ValidateUUID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ValidateID(c.Param("id")); err != nil {
			respondValidation(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
