package serverutils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorHttpStatus(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, NewNotFoundError("x").HttpStatus())
	assert.Equal(t, fiber.StatusBadRequest, NewInvalidArgumentError("x").HttpStatus())
	assert.Equal(t, fiber.StatusServiceUnavailable, NewServiceUnavailableError("x").HttpStatus())
	assert.Equal(t, fiber.StatusUnauthorized, NewUnauthorizedError("x").HttpStatus())
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(NewNotFoundError("missing"))
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "missing", appErr.Message)

	// Wrapped errors still unwrap.
	wrapped := fmt.Errorf("context: %w", NewInvalidArgumentError("bad"))
	appErr, ok = AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInvalidArgument, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Mood string `validate:"required,oneof=awful bad okay good great"`
		Note string `validate:"omitempty,max=5"`
	}

	assert.NoError(t, ValidateRequest(req{Mood: "okay"}))

	err := ValidateRequest(req{Mood: "meh"})
	require.Error(t, err)
	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInvalidArgument, appErr.Code)
	assert.Contains(t, appErr.Message, "Mood")

	err = ValidateRequest(req{Mood: "okay", Note: "toolong"})
	require.Error(t, err)
}
