package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches wrapped domain error", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeNotFound, "zone not found"))
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeConflict))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to load zone")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load zone: connection refused", err.Error())
}

func TestValidationCollectsFields(t *testing.T) {
	err := Validation(
		FieldError{Field: "size", Message: "size must be at least 0.1"},
		FieldError{Field: "dangerLevel", Message: "dangerLevel must be between 1 and 5"},
	)

	assert.True(t, HasCode(err, CodeValidation))
	require.Len(t, FieldsOf(err), 2)
	assert.Contains(t, err.Error(), "size: size must be at least 0.1")
	assert.Contains(t, err.Error(), "dangerLevel: dangerLevel must be between 1 and 5")
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:         http.StatusBadRequest,
		CodeBadRequest:         http.StatusBadRequest,
		CodeInvalidInput:       http.StatusBadRequest,
		CodeNotFound:           http.StatusNotFound,
		CodeConflict:           http.StatusConflict,
		CodeInvariantViolation: http.StatusConflict,
		CodeUnauthorized:       http.StatusUnauthorized,
		CodeForbidden:          http.StatusForbidden,
		CodeInternal:           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), "code %s", code)
	}
}
