// Package handshake provides a two-party, one-shot rendezvous.
//
// New returns two peer handles over one shared slot. Through them exactly
// one value can be handed over (TryPush on one side, TryPull on the other)
// or two values can be combined (Join on both sides). Every operation is an
// immediate attempt: nothing blocks, and retrying a pending pull is up to
// the caller.
//
// Handles are single-use. A terminal operation consumes the handle, and
// using it again panics with a ContractViolation. A handle released before
// contributing a value (Release, or garbage collection) makes the peer's
// pull or join report ErrCanceled instead of pending forever.
//
//	left, right := handshake.New[string]()
//	handshake.Join(left, "Handle Communication", greet)      // pending
//	res := handshake.Join(right, "Symmetrically", greet)     // success
package handshake
