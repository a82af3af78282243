package tile

import (
	"errors"
	"fmt"
)

// Sentinel errors for the execution tiles.
var (
	// ErrBarrierParties indicates a barrier sized below one party.
	ErrBarrierParties = errors.New("tile: barrier needs at least one party")

	// ErrNilBody indicates a run with a nil tile body.
	ErrNilBody = errors.New("tile: nil tile body")
)

// tileErrorf wraps an underlying error with the given operation tag.
func tileErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
