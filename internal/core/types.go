package core

import "image"

// Mode is the run state of a Controller.
type Mode int

const (
	// ModeAutomatic advances generations on a fixed real-time cadence.
	ModeAutomatic Mode = iota
	// ModeManual advances only on an explicit step request.
	ModeManual
)

func (m Mode) String() string {
	switch m {
	case ModeAutomatic:
		return "automatic"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Input is the set of edge-triggered events a host collected for one frame.
type Input struct {
	Step       bool
	ToggleMode bool
	Randomize  bool
	// Clear empties the grid and pauses.
	Clear bool
	// Click holds the grid cell under a primary mouse press, if any.
	Click *image.Point
}

// Canvas receives the per-frame render pass: one Clear followed by one Set
// per live cell.
type Canvas interface {
	Clear()
	Set(x, y int)
}
