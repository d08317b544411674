package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{NewValidation("bad input"), http.StatusBadRequest},
		{NewUnauthorized("no token"), http.StatusUnauthorized},
		{NewForbidden("not yours"), http.StatusForbidden},
		{NewNotFound("gone"), http.StatusNotFound},
		{NewInternal("boom", errors.New("disk on fire")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.Status())
	}
}

func TestFrom(t *testing.T) {
	appErr := NewNotFound("Bug not found")
	assert.Same(t, appErr, From(appErr))

	wrapped := fmt.Errorf("while handling request: %w", appErr)
	assert.Same(t, appErr, From(wrapped))

	plain := errors.New("connection reset")
	got := From(plain)
	assert.Equal(t, Internal, got.Kind)
	assert.Equal(t, "Something went wrong", got.Message)
	assert.ErrorIs(t, got, plain)
}

func TestErrorMessageHidesNothingClientSafe(t *testing.T) {
	err := NewInternal("Something went wrong", errors.New("dial tcp: refused"))
	assert.Contains(t, err.Error(), "dial tcp")
	assert.Equal(t, "Something went wrong", err.Message)
}
