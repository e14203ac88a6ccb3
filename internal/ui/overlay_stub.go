//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
