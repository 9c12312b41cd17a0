// Package system implements the per-tick simulation systems and the
// operations external callers invoke between ticks. Each system reads and
// writes only the component kinds it owns by contract.
package system

import "github.com/rotisserie/eris"

// The operation error taxonomy. Every operation failure wraps one of these
// four sentinels (unknown entities additionally match world.ErrEntityNotFound
// through the chain).
var (
	ErrNotFound             = eris.New("not found")
	ErrInvalidArgument      = eris.New("invalid argument")
	ErrInsufficientResource = eris.New("insufficient resource")
	ErrInvalidState         = eris.New("invalid state")
)
