package term

import (
	"bufio"
	"io"
)

// TextCanvas collects a render pass and prints it as rows of filler strings.
type TextCanvas struct {
	w, h  int
	cells []bool
}

// NewTextCanvas allocates a canvas for a grid of size w*h.
func NewTextCanvas(w, h int) *TextCanvas {
	return &TextCanvas{w: w, h: h, cells: make([]bool, w*h)}
}

// Clear marks every cell dead.
func (c *TextCanvas) Clear() { clear(c.cells) }

// Set marks cell (x, y) alive. Coordinates outside the canvas are ignored.
func (c *TextCanvas) Set(x, y int) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = true
}

// Render prints one line per row, using live and dead for each cell.
func (c *TextCanvas) Render(w io.Writer, live, dead string) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < c.h; y++ {
		for _, alive := range c.cells[y*c.w : (y+1)*c.w] {
			if alive {
				bw.WriteString(live)
			} else {
				bw.WriteString(dead)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
