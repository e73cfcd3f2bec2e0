package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Code    int      `json:"code"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string, details ...string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes the standardized error body for the given status.
// The error field carries the short identifier; human-readable text goes in
// details. Wrapped causes are never echoed to clients.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	response := ErrorResponse{Code: status}

	var appErr *AppError
	if errors.As(err, &appErr) {
		response.Error = appErr.Code
		if appErr.Message != "" {
			response.Details = append(response.Details, appErr.Message)
		}
		response.Details = append(response.Details, appErr.Details...)
	} else {
		response.Error = "INTERNAL_ERROR"
		response.Details = []string{"Internal server error"}
	}

	return c.Status(status).JSON(response)
}
