package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	ErrCodeNotFound           = "not_found"
	ErrCodeInvalidArgument    = "invalid_argument"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUnauthorized       = "unauthorized"
)

// AppError is the service-layer error taxonomy. Services return these;
// the error handler middleware maps them to HTTP statuses. Anything else
// surfaces as a 500.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) HttpStatus() int {
	switch e.Code {
	case ErrCodeNotFound:
		return fiber.StatusNotFound
	case ErrCodeInvalidArgument:
		return fiber.StatusBadRequest
	case ErrCodeServiceUnavailable:
		return fiber.StatusServiceUnavailable
	case ErrCodeUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

func NewInvalidArgumentError(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidArgument, Message: message}
}

func NewServiceUnavailableError(message string) *AppError {
	return &AppError{Code: ErrCodeServiceUnavailable, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
