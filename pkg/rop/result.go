package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a handshake attempt. It is in exactly one of three
// states: success (a value is available), pending (nothing yet, see IsPending)
// or cancel (the handshake can never complete).
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](id uuid.UUID, r T) Result[T] {
	return Result[T]{
		id:        id,
		createdAt: time.Now().UTC(),
		result:    r,
		isSuccess: true,
	}
}

func Pending[T any](id uuid.UUID) Result[T] {
	return Result[T]{
		id:        id,
		createdAt: time.Now().UTC(),
	}
}

func Cancel[T any](id uuid.UUID, err error) Result[T] {
	return Result[T]{
		id:        id,
		createdAt: time.Now().UTC(),
		err:       err,
		isCancel:  true,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) IsPending() bool {
	return !r.isSuccess && !r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Id is the identity of the pair that produced the result.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}
