package life

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds reports a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidDimensions reports a grid constructed with a non-positive size.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidRule reports a threshold that no neighbour count can reach.
	ErrInvalidRule = errors.New("invalid rule thresholds")
	// ErrNoSource reports a random fill requested without a bool source.
	ErrNoSource = errors.New("random fill requires a bool source")
)
