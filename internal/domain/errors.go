package domain

import "errors"

// Validation failures reported by the puzzle loader and the solver's
// precondition check.
var (
	ErrInvalidGridShape = errors.New("invalid grid shape")
	ErrInvalidCellValue = errors.New("invalid cell value")
	ErrDuplicateGiven   = errors.New("duplicate given digit")
)
