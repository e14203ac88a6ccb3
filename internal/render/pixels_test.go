package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestPixelBufferClearAndSet(t *testing.T) {
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	p := NewPixelBuffer(3, 2, on, off)

	p.Set(0, 0)
	p.Clear()
	p.Set(2, 1)
	p.Set(3, 0)
	p.Set(-1, 1)

	pix := p.Pix()
	if len(pix) != 3*2*4 {
		t.Fatalf("len(pix) = %d, expected %d", len(pix), 3*2*4)
	}
	for i := 0; i < 6; i++ {
		got := pix[i*4 : i*4+4]
		want := []byte{off.R, off.G, off.B, off.A}
		if i == 5 {
			want = []byte{on.R, on.G, on.B, on.A}
		}
		if !slices.Equal(got, want) {
			t.Fatalf("pixel %d = %v, expected %v", i, got, want)
		}
	}
}
