package rop

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[T any] interface {
	// Result returns the value of a successful outcome
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// Id returns the identity of the originating pair
	Id() uuid.UUID
}

// WithCancel defines an interface for outcomes that may be cancelled
type WithCancel[T any] interface {
	ResultProvider[T]
	// Err returns the cancellation cause
	Err() error
	// IsSuccess returns true if a value is available
	IsSuccess() bool
	// IsCancel returns true if the outcome can never complete
	IsCancel() bool
}

// WithPending extends WithCancel with the "not yet" state
type WithPending[T any] interface {
	WithCancel[T]
	// IsPending returns true if neither a value nor a cancellation was reported
	IsPending() bool
}

var _ WithPending[struct{}] = Result[struct{}]{}
