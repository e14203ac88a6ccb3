//go:build ebiten

package ui

import (
	"image/color"

	"github.com/taucannonfox/rustlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type modeProvider interface {
	Mode() core.Mode
}

// Overlay draws the paused marker and an optional key help box over the grid.
type Overlay struct {
	src      modeProvider
	showHelp bool
	backdrop *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src modeProvider) *Overlay {
	o := &Overlay{src: src, showHelp: true}
	o.backdrop = ebiten.NewImage(1, 1)
	o.backdrop.Fill(color.RGBA{A: 180})
	return o
}

// Update toggles the help box.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showHelp = !o.showHelp
	}
}

// Draw paints the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	if o.src.Mode() == core.ModeManual {
		text.Draw(screen, "PAUSED", face, 6, 16, color.RGBA{R: 255, G: 200, B: 60, A: 255})
	}
	if !o.showHelp {
		return
	}
	const lineHeight, pad = 15, 6
	width := 0
	for _, line := range HelpLines {
		width = max(width, text.BoundString(face, line).Dx())
	}
	height := len(HelpLines)*lineHeight + pad
	top := screen.Bounds().Dy() - height - pad

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*pad), float64(height))
	op.GeoM.Translate(pad, float64(top))
	screen.DrawImage(o.backdrop, op)
	for i, line := range HelpLines {
		text.Draw(screen, line, face, 2*pad, top+(i+1)*lineHeight, color.White)
	}
}
