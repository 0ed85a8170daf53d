package models

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the service and handler layers.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
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
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewInvalidStateError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidState,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// StatusForCode maps an application error code to an HTTP status.
func StatusForCode(code string) int {
	switch code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeConflict:
		return fiber.StatusConflict
	case CodeInvalidState, CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError creates a standardized error response. Wrapped internal
// errors are logged, never serialized: driver and ORM error text can carry
// table names or connection details that do not belong in an API response.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			if appErr.Code == CodeInternal {
				slog.ErrorContext(c.UserContext(), "internal error",
					slog.String("path", c.Path()),
					slog.String("method", c.Method()),
					slog.Any("error", appErr.Err),
				)
			} else {
				response.Details = appErr.Err.Error()
			}
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
