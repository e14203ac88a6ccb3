package life

import (
	"github.com/pkg/errors"

	"github.com/taucannonfox/rustlife/pkg/core"
)

// Fill selects how a new grid is populated.
type Fill int

const (
	// FillDead starts every cell dead.
	FillDead Fill = iota
	// FillRandom draws every cell independently from a BoolSource.
	FillRandom
)

// Grid implements Conway's Game of Life on a bounded board. Positions
// outside the board are never counted as neighbours, so edge and corner
// cells see at most 5 and 3 neighbours.
type Grid struct {
	w, h int
	rule Rule
	cur  []bool
	nxt  []bool

	generation int
}

// New returns a grid with the configured dimensions and rule, populated per fill.
func New(cfg Config, fill Fill, src core.BoolSource) (*Grid, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", cfg.Width, cfg.Height)
	}
	if err := cfg.Rule.Validate(); err != nil {
		return nil, err
	}
	if fill == FillRandom && src == nil {
		return nil, ErrNoSource
	}
	cells := make([]bool, cfg.Width*cfg.Height)
	g := &Grid{
		w:    cfg.Width,
		h:    cfg.Height,
		rule: cfg.Rule,
		cur:  cells,
		nxt:  make([]bool, len(cells)),
	}
	if fill == FillRandom {
		core.FillBinary(src, g.cur)
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Rule returns the active thresholds.
func (g *Grid) Rule() Rule { return g.rule }

// SetRule replaces the thresholds used by subsequent generations.
func (g *Grid) SetRule(r Rule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	g.rule = r
	return nil
}

// Generation returns the number of generations advanced since the grid was
// created, cleared or randomized.
func (g *Grid) Generation() int { return g.generation }

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// CellAt reports whether the cell at (x, y) is alive.
func (g *Grid) CellAt(x, y int) (bool, error) {
	if !g.Contains(x, y) {
		return false, g.outOfBounds(x, y)
	}
	return g.cur[y*g.w+x], nil
}

// ToggleCell flips the cell at (x, y).
func (g *Grid) ToggleCell(x, y int) error {
	if !g.Contains(x, y) {
		return g.outOfBounds(x, y)
	}
	idx := y*g.w + x
	g.cur[idx] = !g.cur[idx]
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cur)
	g.generation = 0
}

// Randomize redraws every cell from src.
func (g *Grid) Randomize(src core.BoolSource) {
	core.FillBinary(src, g.cur)
	g.generation = 0
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Each calls fn with the coordinates of every live cell in row order.
func (g *Grid) Each(fn func(x, y int)) {
	for y := 0; y < g.h; y++ {
		row := g.cur[y*g.w : (y+1)*g.w]
		for x, alive := range row {
			if alive {
				fn(x, y)
			}
		}
	}
}

// Advance computes the next generation. Every neighbour count is taken from
// the current buffer and results go to the spare one, which then becomes
// current.
func (g *Grid) Advance() {
	w, h := g.w, g.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			g.nxt[idx] = g.rule.Next(g.cur[idx], g.neighbors(x, y))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

func (g *Grid) neighbors(x, y int) uint8 {
	minX, maxX := max(0, x-1), min(g.w-1, x+1)
	minY, maxY := max(0, y-1), min(g.h-1, y+1)
	var n uint8
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cur[ny*g.w+nx] {
				n++
			}
		}
	}
	return n
}

func (g *Grid) outOfBounds(x, y int) error {
	return errors.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d", x, y, g.w, g.h)
}
