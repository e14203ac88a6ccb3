//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
