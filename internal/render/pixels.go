package render

import "image/color"

// PixelBuffer is an RGBA canvas with one pixel per cell. It satisfies
// core.Canvas: Clear paints the background and Set paints a live cell.
type PixelBuffer struct {
	w, h int
	buf  []byte
	on   [4]byte
	off  [4]byte
}

// NewPixelBuffer allocates a buffer for a grid of size w*h.
func NewPixelBuffer(w, h int, on, off color.Color) *PixelBuffer {
	return &PixelBuffer{
		w:   w,
		h:   h,
		buf: make([]byte, 4*w*h),
		on:  rgba(on),
		off: rgba(off),
	}
}

// Clear fills every pixel with the background colour.
func (p *PixelBuffer) Clear() {
	for base := 0; base < len(p.buf); base += 4 {
		copy(p.buf[base:base+4], p.off[:])
	}
}

// Set paints the pixel for cell (x, y). Coordinates outside the buffer are ignored.
func (p *PixelBuffer) Set(x, y int) {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return
	}
	base := (y*p.w + x) * 4
	copy(p.buf[base:base+4], p.on[:])
}

// Pix exposes the RGBA bytes in row-major order.
func (p *PixelBuffer) Pix() []byte { return p.buf }

// Size returns the dimensions of the buffer.
func (p *PixelBuffer) Size() (int, int) { return p.w, p.h }

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
