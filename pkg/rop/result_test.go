package rop

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	r := Success(id, 5)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsPending())
	assert.False(t, r.IsCancel())
	assert.Equal(t, 5, r.Result())
	assert.NoError(t, r.Err())
	assert.Equal(t, id, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestPending(t *testing.T) {
	t.Parallel()
	r := Pending[string](uuid.New())

	assert.True(t, r.IsPending())
	assert.False(t, r.IsSuccess())
	assert.False(t, r.IsCancel())
	assert.Empty(t, r.Result())
}

func TestCancel(t *testing.T) {
	t.Parallel()
	cause := errors.New("gone")
	r := Cancel[int](uuid.New(), cause)

	assert.True(t, r.IsCancel())
	assert.False(t, r.IsPending())
	assert.False(t, r.IsSuccess())
	assert.ErrorIs(t, r.Err(), cause)
}

func TestZeroValueIsPending(t *testing.T) {
	t.Parallel()
	var r Result[int]
	assert.True(t, r.IsPending())
	assert.Equal(t, uuid.Nil, r.Id())
}
