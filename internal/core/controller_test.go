package core

import (
	"image"
	"testing"

	"github.com/taucannonfox/rustlife/pkg/sims/life"
)

type constSource bool

func (c constSource) Bool() bool { return bool(c) }

type recordingCanvas struct {
	clears int
	sets   [][2]int
}

func (r *recordingCanvas) Clear()       { r.clears++ }
func (r *recordingCanvas) Set(x, y int) { r.sets = append(r.sets, [2]int{x, y}) }

func newTestController(t *testing.T, opts ControllerOptions) *Controller {
	t.Helper()
	grid, err := life.New(life.Config{Width: 5, Height: 5, Rule: life.DefaultRule()}, life.FillDead, nil)
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	for _, y := range []int{1, 2, 3} {
		if err := grid.ToggleCell(2, y); err != nil {
			t.Fatal(err)
		}
	}
	return NewController(grid, constSource(true), opts)
}

func TestAutomaticAdvancesOnInterval(t *testing.T) {
	c := newTestController(t, ControllerOptions{Interval: 0.1})

	if c.Tick(0.05, Input{}) {
		t.Fatal("advanced before the interval elapsed")
	}
	if g := c.Grid().Generation(); g != 0 {
		t.Fatalf("generation = %d before the interval elapsed", g)
	}
	if !c.Tick(0.06, Input{}) {
		t.Fatal("did not advance once the interval elapsed")
	}
	if g := c.Grid().Generation(); g != 1 {
		t.Fatalf("generation = %d, expected exactly one advance", g)
	}

	// The accumulator restarts from zero rather than carrying the overshoot.
	if c.Tick(0.09, Input{}) {
		t.Fatal("overshoot from the previous interval was carried over")
	}
}

func TestAutomaticDoesNotCatchUp(t *testing.T) {
	c := newTestController(t, ControllerOptions{Interval: 0.1})
	if !c.Tick(1.0, Input{}) {
		t.Fatal("expected an advance after a long frame")
	}
	if g := c.Grid().Generation(); g != 1 {
		t.Fatalf("generation = %d after a long frame, expected 1", g)
	}
	if c.timer.Elapsed() != 0 {
		t.Fatalf("accumulator = %f after advancing, expected 0", c.timer.Elapsed())
	}
}

func TestAutomaticIgnoresStepKey(t *testing.T) {
	c := newTestController(t, ControllerOptions{Interval: 0.1})
	if c.Tick(0.01, Input{Step: true}) {
		t.Fatal("step key advanced the grid in automatic mode")
	}
}

func TestManualAdvancesOnlyOnStep(t *testing.T) {
	c := newTestController(t, ControllerOptions{Interval: 0.1, StartManual: true})
	if c.Mode() != ModeManual {
		t.Fatalf("mode = %v, expected manual", c.Mode())
	}
	for i := 0; i < 3; i++ {
		if c.Tick(10, Input{}) {
			t.Fatal("advanced in manual mode without a step event")
		}
	}
	if !c.Tick(0, Input{Step: true}) {
		t.Fatal("step event did not advance")
	}
	if g := c.Grid().Generation(); g != 1 {
		t.Fatalf("generation = %d, expected 1", g)
	}
	if alive, _ := c.Grid().CellAt(1, 2); !alive {
		t.Fatal("blinker did not rotate after a manual step")
	}
}

func TestToggleModeResetsAccumulator(t *testing.T) {
	c := newTestController(t, ControllerOptions{Interval: 0.1})
	c.Tick(0.08, Input{})

	c.Tick(0, Input{ToggleMode: true})
	if c.Mode() != ModeManual {
		t.Fatalf("mode = %v after toggle, expected manual", c.Mode())
	}
	c.Tick(0, Input{ToggleMode: true})
	if c.Mode() != ModeAutomatic {
		t.Fatalf("mode = %v after second toggle, expected automatic", c.Mode())
	}
	if c.Tick(0.05, Input{}) {
		t.Fatal("time accumulated before the toggle was kept")
	}
}

func TestClearPauses(t *testing.T) {
	c := newTestController(t, ControllerOptions{})
	c.Tick(0, Input{Clear: true, Randomize: true, ToggleMode: true})
	if c.Mode() != ModeManual {
		t.Fatalf("mode = %v after clear, expected manual", c.Mode())
	}
	if pop := c.Grid().Population(); pop != 0 {
		t.Fatalf("population = %d after clear", pop)
	}
}

func TestRandomizeKeepsMode(t *testing.T) {
	c := newTestController(t, ControllerOptions{StartManual: true})
	c.Tick(0, Input{Randomize: true, ToggleMode: true})
	if c.Mode() != ModeManual {
		t.Fatal("randomize must take precedence over a mode toggle")
	}
	if pop := c.Grid().Population(); pop != 25 {
		t.Fatalf("population = %d, expected every cell drawn from the source", pop)
	}
}

func TestClickTogglesCell(t *testing.T) {
	c := newTestController(t, ControllerOptions{StartManual: true})

	c.Tick(0, Input{Click: &image.Point{X: 0, Y: 4}})
	if alive, _ := c.Grid().CellAt(0, 4); !alive {
		t.Fatal("click did not toggle the cell")
	}
	c.Tick(0, Input{Click: &image.Point{X: 0, Y: 4}})
	if alive, _ := c.Grid().CellAt(0, 4); alive {
		t.Fatal("second click did not restore the cell")
	}

	before := c.Grid().Population()
	for _, p := range []image.Point{{X: 5, Y: 0}, {X: 0, Y: 5}, {X: -1, Y: 2}} {
		c.Tick(0, Input{Click: &p})
	}
	if after := c.Grid().Population(); after != before {
		t.Fatalf("clicks outside the grid changed population %d -> %d", before, after)
	}
}

func TestDrawEmitsLiveCells(t *testing.T) {
	c := newTestController(t, ControllerOptions{})
	canvas := &recordingCanvas{}
	c.Draw(canvas)
	if canvas.clears != 1 {
		t.Fatalf("clears = %d, expected 1", canvas.clears)
	}
	want := [][2]int{{2, 1}, {2, 2}, {2, 3}}
	if len(canvas.sets) != len(want) {
		t.Fatalf("sets = %v, expected %v", canvas.sets, want)
	}
	for i := range want {
		if canvas.sets[i] != want[i] {
			t.Fatalf("sets = %v, expected %v", canvas.sets, want)
		}
	}
}

func TestParameterSetters(t *testing.T) {
	c := newTestController(t, ControllerOptions{})

	if c.SetIntParameter("live", 9) {
		t.Fatal("accepted a birth threshold above 8")
	}
	if c.SetIntParameter("unknown", 1) {
		t.Fatal("accepted an unknown key")
	}
	if !c.SetIntParameter("die_upper", 4) {
		t.Fatal("rejected a valid survive max")
	}
	if got := c.Grid().Rule().DieUpper; got != 4 {
		t.Fatalf("die upper = %d, expected 4", got)
	}
	if !c.SetFloatParameter("interval", 0.5) || c.Interval() != 0.5 {
		t.Fatalf("interval = %f, expected 0.5", c.Interval())
	}
	if c.SetFloatParameter("interval", 0) {
		t.Fatal("accepted a zero interval")
	}

	snap := c.Parameters()
	if p, ok := snap.Lookup("die_upper"); !ok || p.Value != "4" {
		t.Fatalf("snapshot die_upper = %+v", p)
	}
	if p, ok := snap.Lookup("manual"); !ok || p.Value != "false" {
		t.Fatalf("snapshot manual = %+v", p)
	}
	if p, ok := snap.Lookup("population"); !ok || p.Value != "3" {
		t.Fatalf("snapshot population = %+v", p)
	}
}
