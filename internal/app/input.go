package app

import (
	"image"

	rng "github.com/taucannonfox/rustlife/pkg/core"
)

// CellAt maps a cursor position in screen pixels to the grid cell under it.
func CellAt(mx, my, scale int, size rng.Size) (image.Point, bool) {
	if mx < 0 || my < 0 || scale <= 0 {
		return image.Point{}, false
	}
	p := image.Point{X: mx / scale, Y: my / scale}
	if p.X >= size.W || p.Y >= size.H {
		return image.Point{}, false
	}
	return p, true
}
