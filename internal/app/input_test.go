package app

import (
	"image"
	"testing"

	rng "github.com/taucannonfox/rustlife/pkg/core"
)

func TestCellAt(t *testing.T) {
	size := rng.Size{W: 10, H: 5}
	cases := []struct {
		mx, my int
		want   image.Point
		ok     bool
	}{
		{0, 0, image.Point{}, true},
		{7, 3, image.Point{X: 1}, true},
		{39, 19, image.Point{X: 9, Y: 4}, true},
		{40, 0, image.Point{}, false},
		{0, 20, image.Point{}, false},
		{-1, 0, image.Point{}, false},
		{-3, 2, image.Point{}, false},
	}
	for _, tc := range cases {
		got, ok := CellAt(tc.mx, tc.my, 4, size)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CellAt(%d,%d) = %v,%v expected %v,%v", tc.mx, tc.my, got, ok, tc.want, tc.ok)
		}
	}
}
