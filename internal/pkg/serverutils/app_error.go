package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the error carried from services up to the error handler
// middleware, which maps it onto an HTTP status.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewGoneError(message string) *AppError {
	return &AppError{Status: fiber.StatusGone, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Message: message}
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewUpstreamError(format string, args ...interface{}) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: fmt.Sprintf(format, args...)}
}

func NewInternalError(format string, args ...interface{}) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: fmt.Sprintf(format, args...)}
}
