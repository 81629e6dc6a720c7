package handshake

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrCanceled is reported when the peer was released before contributing
	// a value, so the handshake can never complete.
	ErrCanceled = errors.New("handshake: canceled")
	// ErrOccupied is returned by TryPush when the peer has already deposited.
	ErrOccupied = errors.New("handshake: slot already holds a value")
)

// ContractViolation is the panic value raised when a consumed handle is used.
type ContractViolation struct {
	Op   string
	Pair uuid.UUID
	Side string
}

func (v ContractViolation) Error() string {
	return fmt.Sprintf("handshake: %s on consumed %s handle of pair %s", v.Op, v.Side, v.Pair)
}
