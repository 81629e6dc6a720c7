// Package rop holds the outcome type shared by the handshake primitives.
//
// A Result[T] is either a success carrying a value, a pending "not yet"
// outcome, or a cancellation carrying its cause. Every result records the
// identity of the pair that produced it.
package rop
