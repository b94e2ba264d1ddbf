package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := ValidationError("invalid session id")

	assert.Equal(t, TypeValidation, err.Type)
	assert.Equal(t, "invalid session id", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Nil(t, err.Cause)
}

func TestUnauthorizedError(t *testing.T) {
	err := UnauthorizedError("missing bearer token")

	assert.Equal(t, TypeUnauthorized, err.Type)
	assert.Equal(t, http.StatusUnauthorized, err.HTTPStatus())
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("session not found")

	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
}

func TestConflictError(t *testing.T) {
	err := ConflictError("email already registered")

	assert.Equal(t, TypeConflict, err.Type)
	assert.Equal(t, http.StatusConflict, err.HTTPStatus())
}

func TestInternalError(t *testing.T) {
	cause := errors.New("connection refused")
	err := InternalError("database unavailable", cause)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestExternalError(t *testing.T) {
	cause := errors.New("analysis service timeout")
	err := ExternalError("analysis failed", cause)

	assert.Equal(t, TypeExternal, err.Type)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus())
}

func TestWithField(t *testing.T) {
	err := NotFoundError("session not found").
		WithField("session_id", "abc-123").
		WithField("user_id", "456")

	assert.Equal(t, "abc-123", err.Context["session_id"])
	assert.Equal(t, "456", err.Context["user_id"])
}

func TestToResponse(t *testing.T) {
	err := ValidationError("text is required").WithField("field", "text")
	resp := err.ToResponse()

	assert.Equal(t, "text is required", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, "text", resp.Context["field"])
}

func TestErrorsIs(t *testing.T) {
	cause := errors.New("sentinel")
	err := InternalError("wrapped", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestErrorsAs(t *testing.T) {
	var target *Error
	wrapped := fmt.Errorf("outer: %w", NotFoundError("inner"))

	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, TypeNotFound, target.Type)
}

func TestAsStructuredError(t *testing.T) {
	structured := ConflictError("already exists")
	assert.Same(t, structured, AsStructuredError(structured))

	plain := errors.New("boom")
	converted := AsStructuredError(plain)
	assert.Equal(t, TypeInternal, converted.Type)
	assert.Equal(t, plain, converted.Cause)

	assert.Nil(t, AsStructuredError(nil))
}
