package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. Callers match them with errors.Is.
var (
	ErrInvalidSize      = errors.New("blobblab: invalid board size")
	ErrInvalidFootprint = errors.New("blobblab: invalid footprint")
	ErrEmptyPieceTable  = errors.New("blobblab: empty piece table")
	ErrNotInitialized   = errors.New("blobblab: board not initialized")
	ErrTurnInProgress   = errors.New("blobblab: turn already in progress")
)

// invariant panics with a formatted message. Used for broken invariants only.
func invariant(format string, args ...any) {
	panic(fmt.Sprintf("blobblab: "+format, args...))
}
