package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/memtodo/internal/pkg/validator"
)

// ErrorResponse represents a single-message error payload
type ErrorResponse struct {
	Error string `json:"error" example:"Todo not found"`
	Code  string `json:"code,omitempty" example:"NOT_FOUND"`
}

// ValidationErrorResponse carries every field-level problem found in a request
type ValidationErrorResponse struct {
	Errors validator.FieldErrors `json:"errors"`
}

// StatusResponse is the health check payload
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Success sends a 200 OK response with data as the whole body
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 with an empty body
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// ValidationFailed sends a 400 with the full list of field errors
func ValidationFailed(c *gin.Context, errs validator.FieldErrors) {
	if errs == nil {
		errs = validator.FieldErrors{}
	}
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
}

// AbortValidationFailed is ValidationFailed for middleware: later handlers do not run
func AbortValidationFailed(c *gin.Context, errs validator.FieldErrors) {
	ValidationFailed(c, errs)
	c.Abort()
}

// BindJSONError handles request bodies that could not be decoded
func BindJSONError(c *gin.Context, message string) {
	var errs validator.FieldErrors
	errs.Add("body", message)
	ValidationFailed(c, errs)
}
