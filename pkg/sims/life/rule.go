package life

import "github.com/pkg/errors"

// maxNeighbors is the neighbour count of an interior cell.
const maxNeighbors = 8

// Rule holds the thresholds of the Life transition.
type Rule struct {
	// Live is the exact neighbour count that brings a dead cell to life.
	Live uint8
	// DieLower and DieUpper bound the neighbour counts a live cell survives.
	DieLower uint8
	DieUpper uint8
}

// DefaultRule returns Conway's B3/S23 thresholds.
func DefaultRule() Rule {
	return Rule{Live: 3, DieLower: 2, DieUpper: 3}
}

// Validate reports whether every threshold lies within [0, 8].
func (r Rule) Validate() error {
	if r.Live > maxNeighbors || r.DieLower > maxNeighbors || r.DieUpper > maxNeighbors {
		return errors.Wrapf(ErrInvalidRule, "live=%d die=[%d,%d]", r.Live, r.DieLower, r.DieUpper)
	}
	return nil
}

// Next returns the state of a cell with the given neighbour count in the
// following generation.
func (r Rule) Next(alive bool, neighbors uint8) bool {
	if alive {
		return neighbors >= r.DieLower && neighbors <= r.DieUpper
	}
	return neighbors == r.Live
}
