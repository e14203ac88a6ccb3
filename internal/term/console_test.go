package term

import (
	"image"
	"strings"
	"testing"

	"github.com/taucannonfox/rustlife/internal/core"
	"github.com/taucannonfox/rustlife/pkg/sims/life"
)

func TestCellAtColumn(t *testing.T) {
	cases := []struct {
		col, row int
		want     image.Point
		ok       bool
	}{
		{0, 0, image.Point{}, true},
		{1, 0, image.Point{}, true},
		{2, 3, image.Point{X: 1, Y: 3}, true},
		{19, 1, image.Point{X: 9, Y: 1}, true},
		{20, 1, image.Point{}, false},
		{-1, 0, image.Point{}, false},
	}
	for _, tc := range cases {
		got, ok := cellAtColumn(tc.col, tc.row, 10)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("cellAtColumn(%d,%d) = %v,%v expected %v,%v", tc.col, tc.row, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStatusLine(t *testing.T) {
	grid, err := life.New(life.Config{Width: 4, Height: 4, Rule: life.DefaultRule()}, life.FillDead, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctrl := core.NewController(grid, nil, core.ControllerOptions{StartManual: true})
	ctrl.Tick(0, core.Input{Click: &image.Point{X: 1, Y: 1}, Step: true})

	line := statusLine(ctrl)
	for _, want := range []string{"manual", "gen 1", "pop 0"} {
		if !strings.Contains(line, want) {
			t.Fatalf("status %q does not contain %q", line, want)
		}
	}
}

func TestFramePassesPendingInput(t *testing.T) {
	grid, err := life.New(life.Config{Width: 4, Height: 4, Rule: life.DefaultRule()}, life.FillDead, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctrl := core.NewController(grid, nil, core.ControllerOptions{StartManual: true})
	c := NewConsole(ctrl, 30)

	c.press(func(in *core.Input) { in.Click = &image.Point{X: 2, Y: 3} })(nil, nil)
	if c.step() {
		t.Fatal("advanced without a queued step")
	}

	if alive, _ := grid.CellAt(2, 3); !alive {
		t.Fatal("queued click was not applied")
	}
	if c.pending.Click != nil {
		t.Fatal("pending input not reset")
	}

	c.press(func(in *core.Input) { in.Step = true })(nil, nil)
	if !c.step() {
		t.Fatal("queued step did not advance")
	}
	if c.step() {
		t.Fatal("step was applied twice")
	}
}
