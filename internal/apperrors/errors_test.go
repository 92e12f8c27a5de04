package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStorageErrorMatchesSentinel(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := NewStorageError("failed to insert transaction", cause)

	assert.ErrorIs(t, err, ErrStorage, "storage errors should match the ErrStorage sentinel")
	assert.ErrorIs(t, err, cause, "the underlying cause should stay reachable")

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.Contains(t, err.Error(), "failed to insert transaction")
}

func TestNewNotFoundErrorMatchesSentinel(t *testing.T) {
	err := NewNotFoundError("transaction missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStorage, "not-found is not a storage failure")
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := NewAppError(400, "bad input", nil)

	assert.Equal(t, "bad input", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
