package handshake

import (
	"sync"

	"github.com/google/uuid"
)

type state int

const (
	pending state = iota
	ready
	canceled
)

// slot is the state shared by the two sides of a pair. The value and the
// liveness of both sides are guarded by one mutex.
type slot[T any] struct {
	id uuid.UUID

	mu    sync.Mutex
	value T
	full  bool
	live  [2]bool
}

func newSlot[T any]() *slot[T] {
	return &slot[T]{
		id:   uuid.New(),
		live: [2]bool{true, true},
	}
}

func peerOf(side int) int {
	return 1 - side
}

// put deposits v unless the peer already did.
func (s *slot[T]) put(side int, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.full {
		return false
	}
	s.value, s.full = v, true
	s.live[side] = false
	return true
}

// take empties a full slot. On an empty slot it reports canceled when the
// peer is gone, pending otherwise; only pending keeps the side live.
func (s *slot[T]) take(side int) (T, state) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.full {
		v := s.value
		s.value, s.full = zero, false
		s.live[side] = false
		return v, ready
	}
	if !s.live[peerOf(side)] {
		s.live[side] = false
		return zero, canceled
	}
	return zero, pending
}

// exchange takes the peer's value if present, otherwise deposits v.
// The side is never live afterwards.
func (s *slot[T]) exchange(side int, v T) (T, state) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.live[side] = false

	var zero T
	if s.full {
		peer := s.value
		s.value, s.full = zero, false
		return peer, ready
	}
	if !s.live[peerOf(side)] {
		return zero, canceled
	}
	s.value, s.full = v, true
	return zero, pending
}

func (s *slot[T]) release(side int) {
	s.mu.Lock()
	s.live[side] = false
	s.mu.Unlock()
}

func (s *slot[T]) snapshot() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.full
}
