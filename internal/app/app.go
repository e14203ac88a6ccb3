//go:build ebiten

package app

import (
	"time"

	"github.com/taucannonfox/rustlife/internal/core"
	"github.com/taucannonfox/rustlife/internal/render"
	"github.com/taucannonfox/rustlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *core.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
	last  time.Time
}

// New constructs a Game for the provided controller.
func New(ctrl *core.Controller, scale, hudWidth int) *Game {
	size := ctrl.Grid().Size()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H, colornames.White, colornames.Black),
		hud:     ui.NewHUD(ctrl, hudWidth),
		overlay: ui.NewOverlay(ctrl),
		scale:   scale,
	}
}

// Update gathers this frame's input and hands it to the controller.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	in := core.Input{
		Step:       inpututil.IsKeyJustPressed(ebiten.KeyS),
		ToggleMode: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Randomize:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Clear:      inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
	size := g.ctrl.Grid().Size()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if p, ok := CellAt(mx, my, g.scale, size); ok {
			in.Click = &p
		}
	}

	g.overlay.Update()
	g.hud.Update(size.W * g.scale)
	g.ctrl.Tick(g.elapsed(), in)
	return nil
}

// elapsed returns wall-clock seconds since the previous Update.
func (g *Game) elapsed() float64 {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return dt
}

// Draw renders the current generation, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ctrl.Draw(g.painter)
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)

	size := g.ctrl.Grid().Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Grid().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
