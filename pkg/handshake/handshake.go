package handshake

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ib-77/handshake/pkg/rop"
)

// Handshake is one side of a pair created by New. A handle is single-use:
// the first terminal operation consumes it, and any later operation panics
// with a ContractViolation. Release is the only exception.
type Handshake[T any] struct {
	slot *slot[T]
	side int
	used atomic.Bool
}

type sideRef[T any] struct {
	slot *slot[T]
	side int
}

// New creates two peer handles sharing one empty slot. There is no first or
// second side: either may push, pull or join, in any order.
//
// A handle that becomes unreachable without being consumed is released by
// the garbage collector, which lets its peer observe the cancellation.
func New[T any]() (*Handshake[T], *Handshake[T]) {
	s := newSlot[T]()
	return newHandle(s, 0), newHandle(s, 1)
}

func newHandle[T any](s *slot[T], side int) *Handshake[T] {
	h := &Handshake[T]{slot: s, side: side}
	runtime.AddCleanup(h, func(r sideRef[T]) { r.slot.release(r.side) }, sideRef[T]{slot: s, side: side})
	return h
}

// ID identifies the pair; both sides report the same value.
func (h *Handshake[T]) ID() uuid.UUID {
	return h.slot.id
}

// TryPush deposits v and consumes the handle. If the peer has already
// deposited, ErrOccupied is returned and the handle remains usable; v is
// not retained. The peer does not need to be alive: the value waits in the
// slot until it is pulled or the pair is discarded.
func (h *Handshake[T]) TryPush(v T) error {
	h.claim("push")
	if !h.slot.put(h.side, v) {
		h.used.Store(false)
		return ErrOccupied
	}
	return nil
}

// TryPull retrieves the peer's value. It never blocks:
//   - success: the value is returned and the handle is consumed
//   - pending: the slot is empty, the handle stays usable and the caller
//     decides when to retry
//   - cancel: the peer was released without depositing, the handle is
//     consumed and Err() is ErrCanceled
func (h *Handshake[T]) TryPull() rop.Result[T] {
	h.claim("pull")
	v, st := h.slot.take(h.side)
	switch st {
	case ready:
		return rop.Success(h.ID(), v)
	case canceled:
		return rop.Cancel[T](h.ID(), ErrCanceled)
	default:
		h.used.Store(false)
		return rop.Pending[T](h.ID())
	}
}

// Join combines own with the peer's value in one atomic step and consumes
// the handle. The first side to join deposits own and gets a pending result;
// the second side takes it and gets combine(peer, own). If the peer was
// released without joining, the result is cancelled with ErrCanceled.
//
// combine is called outside the slot's lock.
func Join[T, U any](h *Handshake[T], own T, combine func(peer, own T) U) rop.Result[U] {
	h.claim("join")

	peer, st := h.slot.exchange(h.side, own)
	switch st {
	case ready:
		return rop.Success(h.ID(), combine(peer, own))
	case canceled:
		return rop.Cancel[U](h.ID(), ErrCanceled)
	default:
		return rop.Pending[U](h.ID())
	}
}

// Release drops the handle without using it. The peer's next pull or join
// then reports cancellation unless a value was already deposited. Releasing
// a consumed handle does nothing, so it is safe to defer.
func (h *Handshake[T]) Release() {
	if h.used.CompareAndSwap(false, true) {
		h.slot.release(h.side)
	}
}

// IsConsumed reports whether the handle can no longer be operated on. It
// also reports true while an operation on the handle is in flight.
func (h *Handshake[T]) IsConsumed() bool {
	return h.used.Load()
}

// IsSet reports whether the slot currently holds a value. The answer may be
// stale as soon as it is returned; use it for diagnostics only.
func (h *Handshake[T]) IsSet() bool {
	_, full := h.slot.snapshot()
	return full
}

// Equal reports whether two handles currently see the same slot contents:
// both empty, or both holding equal values.
func Equal[T comparable](a, b *Handshake[T]) bool {
	if a.slot == b.slot {
		return true
	}
	av, afull := a.slot.snapshot()
	bv, bfull := b.slot.snapshot()
	if afull != bfull {
		return false
	}
	return !afull || av == bv
}

func (h *Handshake[T]) String() string {
	v, full := h.slot.snapshot()
	contents := "<empty>"
	if full {
		contents = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("Handshake{pair: %s, side: %s, value: %s}", h.ID(), sideName(h.side), contents)
}

// claim marks the handle used for the duration of op. Operations that leave
// the handle usable hand the claim back.
func (h *Handshake[T]) claim(op string) {
	if !h.used.CompareAndSwap(false, true) {
		panic(ContractViolation{Op: op, Pair: h.ID(), Side: sideName(h.side)})
	}
}

func sideName(side int) string {
	if side == 0 {
		return "left"
	}
	return "right"
}
