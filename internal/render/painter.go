//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a PixelBuffer into a single image and draws it scaled.
type GridPainter struct {
	*PixelBuffer
	img *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	return &GridPainter{
		PixelBuffer: NewPixelBuffer(w, h, on, off),
		img:         ebiten.NewImage(w, h),
	}
}

// Blit uploads the current pixels and draws them onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
