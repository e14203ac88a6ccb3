package term

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/taucannonfox/rustlife/internal/core"
	"github.com/taucannonfox/rustlife/internal/ui"
)

const (
	gridView   = "grid"
	statusView = "status"
	helpView   = "help"

	// cellWidth is the number of terminal columns per cell.
	cellWidth = 2
)

// Console drives a Controller from a gocui terminal. Key and mouse handlers
// only record input; the controller is touched solely from frame callbacks
// queued on the gui goroutine.
type Console struct {
	ctrl   *core.Controller
	canvas *TextCanvas
	period time.Duration

	pending  core.Input
	last     time.Time
	showHelp bool

	liveFiller string
	deadFiller string
}

// NewConsole creates a console rendering fps frames per second.
func NewConsole(ctrl *core.Controller, fps int) *Console {
	if fps <= 0 {
		fps = 30
	}
	size := ctrl.Grid().Size()
	return &Console{
		ctrl:       ctrl,
		canvas:     NewTextCanvas(size.W, size.H),
		period:     time.Second / time.Duration(fps),
		showHelp:   true,
		liveFiller: aurora.Green(strings.Repeat("█", cellWidth)).String(),
		deadFiller: strings.Repeat(" ", cellWidth),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer g.Close()

	g.Mouse = true
	g.InputEsc = true
	g.SetManagerFunc(c.layout)
	if err := c.bindKeys(g); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	stopped := make(chan struct{})
	eg.Go(func() error {
		defer close(stopped)
		if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
			return errors.Wrap(err, "terminal main loop")
		}
		return nil
	})
	eg.Go(func() error {
		ticker := time.NewTicker(c.period)
		defer ticker.Stop()
		for {
			select {
			case <-stopped:
				return nil
			case <-ctx.Done():
				g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
				<-stopped
				return nil
			case <-ticker.C:
				g.Update(c.frame)
			}
		}
	})
	return eg.Wait()
}

func (c *Console) bindKeys(g *gocui.Gui) error {
	bindings := []struct {
		view    string
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{"", gocui.KeyCtrlC, quit},
		{"", gocui.KeyEsc, quit},
		{"", 'q', quit},
		{"", 's', c.press(func(in *core.Input) { in.Step = true })},
		{"", gocui.KeySpace, c.press(func(in *core.Input) { in.ToggleMode = true })},
		{"", 'r', c.press(func(in *core.Input) { in.Randomize = true })},
		{"", 'c', c.press(func(in *core.Input) { in.Clear = true })},
		{"", 'h', c.toggleHelp},
		{gridView, gocui.MouseLeft, c.click},
	}
	for _, b := range bindings {
		if err := g.SetKeybinding(b.view, b.key, gocui.ModNone, b.handler); err != nil {
			return errors.Wrapf(err, "bind %v", b.key)
		}
	}
	return nil
}

func quit(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }

func (c *Console) press(apply func(*core.Input)) func(*gocui.Gui, *gocui.View) error {
	return func(*gocui.Gui, *gocui.View) error {
		apply(&c.pending)
		return nil
	}
}

func (c *Console) toggleHelp(*gocui.Gui, *gocui.View) error {
	c.showHelp = !c.showHelp
	return nil
}

func (c *Console) click(_ *gocui.Gui, v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	p, ok := cellAtColumn(cx+ox, cy+oy, c.ctrl.Grid().Size().W)
	if ok {
		c.pending.Click = &p
	}
	return nil
}

// layout keeps every view frameless and starts it one cell off-screen so the
// drawable area begins at column 0 and mouse clicks never land on a border.
func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	size := c.ctrl.Grid().Size()
	gridW := max(1, min(size.W*cellWidth, maxX))
	gridH := max(1, min(size.H, maxY-1))

	if v, err := g.SetView(gridView, -1, -1, gridW, gridH); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
	}
	if v, err := g.SetView(statusView, -1, gridH-1, max(maxX, 1), gridH+1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
	}
	if !c.showHelp {
		if err := g.DeleteView(helpView); err != nil && !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		return nil
	}
	width := 0
	for _, line := range ui.HelpLines {
		width = max(width, len(line))
	}
	x0 := max(-1, maxX-width-2)
	if v, err := g.SetView(helpView, x0, -1, max(maxX, x0+1), len(ui.HelpLines)); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		for _, line := range ui.HelpLines {
			fmt.Fprintln(v, aurora.Yellow(line))
		}
	}
	return nil
}

func (c *Console) frame(g *gocui.Gui) error {
	c.step()
	return c.redraw(g)
}

// step hands the input queued since the previous frame to the controller.
func (c *Console) step() bool {
	in := c.pending
	c.pending = core.Input{}
	return c.ctrl.Tick(c.elapsed(), in)
}

func (c *Console) redraw(g *gocui.Gui) error {
	grid, err := g.View(gridView)
	if err != nil {
		// Layout has not run yet.
		return nil
	}
	grid.Clear()
	c.ctrl.Draw(c.canvas)
	if err := c.canvas.Render(grid, c.liveFiller, c.deadFiller); err != nil {
		return err
	}

	status, err := g.View(statusView)
	if err != nil {
		return nil
	}
	status.Clear()
	fmt.Fprint(status, statusLine(c.ctrl))
	return nil
}

func (c *Console) elapsed() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

func statusLine(ctrl *core.Controller) string {
	mode := aurora.Cyan("running")
	if ctrl.Mode() == core.ModeManual {
		mode = aurora.Blue("manual")
	}
	grid := ctrl.Grid()
	return fmt.Sprintf("%s  gen %d  pop %d  [h] help", mode, grid.Generation(), grid.Population())
}

// cellAtColumn maps a terminal column and row to a grid cell.
func cellAtColumn(col, row, gridWidth int) (image.Point, bool) {
	if col < 0 || row < 0 {
		return image.Point{}, false
	}
	x := col / cellWidth
	if x >= gridWidth {
		return image.Point{}, false
	}
	return image.Point{X: x, Y: row}, true
}
