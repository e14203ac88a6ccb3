package core

import (
	"strconv"

	rng "github.com/taucannonfox/rustlife/pkg/core"
	"github.com/taucannonfox/rustlife/pkg/sims/life"
)

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	// Interval is the automatic-mode period in seconds; zero selects DefaultInterval.
	Interval float64
	// StartManual starts the controller paused.
	StartManual bool
}

// Controller owns a Life grid and decides, frame by frame, whether it
// advances. All methods must be called from the host's frame loop.
type Controller struct {
	grid  *life.Grid
	src   rng.BoolSource
	mode  Mode
	timer *Interval
}

// NewController wraps grid. src supplies cells for Randomize requests.
func NewController(grid *life.Grid, src rng.BoolSource, opts ControllerOptions) *Controller {
	c := &Controller{
		grid:  grid,
		src:   src,
		timer: NewInterval(opts.Interval),
	}
	if opts.StartManual {
		c.mode = ModeManual
	}
	return c
}

// Grid exposes the controlled grid.
func (c *Controller) Grid() *life.Grid { return c.grid }

// Mode returns the current run state.
func (c *Controller) Mode() Mode { return c.mode }

// Interval returns the automatic-mode period in seconds.
func (c *Controller) Interval() float64 { return c.timer.Step() }

// Tick processes one frame of input and elapsed time and reports whether a
// generation was advanced. At most one generation advances per call.
func (c *Controller) Tick(elapsed float64, in Input) bool {
	switch {
	case in.Clear:
		c.grid.Clear()
		c.mode = ModeManual
	case in.Randomize:
		if c.src != nil {
			c.grid.Randomize(c.src)
		}
	case in.ToggleMode:
		c.toggleMode()
	}

	if p := in.Click; p != nil && c.grid.Contains(p.X, p.Y) {
		if err := c.grid.ToggleCell(p.X, p.Y); err != nil {
			panic(err)
		}
	}

	if c.mode == ModeManual {
		if !in.Step {
			return false
		}
		c.grid.Advance()
		return true
	}
	if !c.timer.Add(elapsed) {
		return false
	}
	c.grid.Advance()
	return true
}

// Draw issues the render pass for the current generation to canvas.
func (c *Controller) Draw(canvas Canvas) {
	canvas.Clear()
	c.grid.Each(canvas.Set)
}

func (c *Controller) toggleMode() {
	if c.mode == ModeAutomatic {
		c.mode = ModeManual
	} else {
		c.mode = ModeAutomatic
	}
	c.timer.Reset()
}

// Parameters reports the controller and grid state for the HUD.
func (c *Controller) Parameters() ParameterSnapshot {
	size := c.grid.Size()
	rule := c.grid.Rule()
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "World",
			Params: []Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				intParam("generation", "Generation", c.grid.Generation()),
				intParam("population", "Population", c.grid.Population()),
			},
		},
		{
			Name: "Run",
			Params: []Parameter{
				boolParam("manual", "Manual", c.mode == ModeManual),
				floatParam("interval", "Interval (s)", c.timer.Step()),
			},
		},
		{
			Name: "Rule",
			Params: []Parameter{
				intParam("live", "Birth at", int(rule.Live)),
				intParam("die_lower", "Survive min", int(rule.DieLower)),
				intParam("die_upper", "Survive max", int(rule.DieUpper)),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (c *Controller) ParameterControls() []ParameterControl {
	return []ParameterControl{
		{Key: "live", Label: "Birth at", Type: ParamTypeInt, Step: 1, Min: 0, Max: 8},
		{Key: "die_lower", Label: "Survive min", Type: ParamTypeInt, Step: 1, Min: 0, Max: 8},
		{Key: "die_upper", Label: "Survive max", Type: ParamTypeInt, Step: 1, Min: 0, Max: 8},
		{Key: "interval", Label: "Interval (s)", Type: ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1},
	}
}

// SetIntParameter updates a rule threshold.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if value < 0 || value > 8 {
		return false
	}
	rule := c.grid.Rule()
	switch key {
	case "live":
		rule.Live = uint8(value)
	case "die_lower":
		rule.DieLower = uint8(value)
	case "die_upper":
		rule.DieUpper = uint8(value)
	default:
		return false
	}
	return c.grid.SetRule(rule) == nil
}

// SetFloatParameter updates the automatic-mode interval.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	if key != "interval" || value <= 0 {
		return false
	}
	c.timer.SetStep(value)
	return true
}

func intParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}
