package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConflictErrorWithPayload(t *testing.T) {
	clashes := []string{"standup"}
	err := NewConflictErrorWithPayload("room already booked", clashes)

	assert.Equal(t, http.StatusConflict, err.Code)
	assert.True(t, IsConflictError(err))
	assert.Equal(t, clashes, err.Payload)
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create meeting: %w", NewNotFoundError("room not found"))

	assert.True(t, IsNotFoundError(wrapped))
	assert.Equal(t, "room not found", GetAppError(wrapped).Message)
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry '1-2' for key 'PRIMARY'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: ticket_assignments.ticket_id")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "validation_error: bad input (title is required)", NewValidationError("bad input", "title is required").Error())
	assert.Equal(t, "forbidden: nope", NewForbiddenError("nope").Error())
	assert.True(t, IsForbiddenError(NewForbiddenError("nope")))
}

func TestIsDuplicateError_Translated(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
}

func TestInternalError_Status(t *testing.T) {
	err := NewInternalError("failed to save ticket")

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.False(t, IsValidationError(err))
	assert.Empty(t, err.Details)
}
