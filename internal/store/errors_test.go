package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntitySentinelsMatchGenerics(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrProductNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)

	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrProductNotFound)))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", ErrEmailExists)))
	assert.False(t, IsNotFoundError(errors.New("boom")))
}

func TestStoreErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("socket reset")
	err := NewStoreError("product", "update", "write failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "update operation on product failed")
	assert.Contains(t, err.Error(), "socket reset")

	withoutCause := NewStoreError("user", "create", "rejected", nil)
	assert.Equal(t, "create operation on user failed: rejected", withoutCause.Error())
}
