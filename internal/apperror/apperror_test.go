package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-events/internal/apperror"
)

func TestBadRequest(t *testing.T) {
	details := []apperror.FieldError{{Field: "title", Message: "Title must be a string"}}
	err := apperror.BadRequest("Validation failed", details)

	assert.Equal(t, 400, err.StatusCode)
	assert.Equal(t, apperror.CodeValidation, err.Code)
	assert.Equal(t, "Validation failed", err.Error())
	assert.Equal(t, details, err.Details)
}

func TestConflict(t *testing.T) {
	err := apperror.Conflict("Event with same title and date already exists", apperror.CodeDuplicate)

	assert.Equal(t, 409, err.StatusCode)
	assert.Equal(t, apperror.CodeDuplicate, err.Code)
	assert.Empty(t, err.Details)
}

func TestNotFound(t *testing.T) {
	err := apperror.NotFound("Event not found")

	assert.Equal(t, 404, err.StatusCode)
	assert.Equal(t, apperror.CodeNotFound, err.Code)
}

func TestInternal(t *testing.T) {
	err := apperror.Internal()

	assert.Equal(t, 500, err.StatusCode)
	assert.Equal(t, apperror.CodeInternal, err.Code)
	assert.Equal(t, apperror.InternalMessage, err.Message)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating event: %w", apperror.BadRequest("Validation failed", nil))

	var appErr *apperror.AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
