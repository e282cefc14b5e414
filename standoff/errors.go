package standoff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions covers board sides outside 1..MaxSide.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrInvalidPieceSpec covers unrecognized piece types.
	ErrInvalidPieceSpec = errors.New("invalid piece spec")
)

func errDimensions(rows, cols int) error {
	return fmt.Errorf("%w: %dx%d (each side must be 1..%d)", ErrInvalidDimensions, rows, cols, MaxSide)
}

func errPiece(name string) error {
	return fmt.Errorf("%w: unknown piece %q", ErrInvalidPieceSpec, name)
}
