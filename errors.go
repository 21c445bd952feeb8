package twophase

import "errors"

// Sentinel errors for the twophase package.
var (
	// Initialization errors
	ErrBadTables = errors.New("twophase: symmetry table initialization failed")

	// Parsing errors
	ErrInvalidNotation = errors.New("twophase: invalid move notation")

	// State errors
	ErrInvalidState = errors.New("twophase: unreachable cube state")
	ErrNoSolution   = errors.New("twophase: no solution found within limits")
)
