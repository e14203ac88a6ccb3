package app

import (
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/taucannonfox/rustlife/internal/core"
	rng "github.com/taucannonfox/rustlife/pkg/core"
	"github.com/taucannonfox/rustlife/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	Scale       int
	TPS         int
	Seed        int64
	StartManual bool
	Interval    time.Duration
	HUDWidth    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    200,
		Height:   200,
		Scale:    4,
		TPS:      60,
		Interval: time.Second / 15,
		HUDWidth: 220,
	}
}

// Bind attaches the simulation and window flags to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	c.BindSimulation(p)
	p.Int(&c.Scale, "S", "scale", "How many screen pixels each cell takes up")
	p.Int(&c.HUDWidth, "", "hud", "HUD panel width in pixels (0 hides it)")
}

// BindSimulation attaches only the flags shared by every front-end.
func (c *Config) BindSimulation(p *flaggy.Parser) {
	p.Int(&c.Width, "W", "width", "Sets the simulation space's width")
	p.Int(&c.Height, "H", "height", "Sets the simulation space's height")
	p.Int(&c.TPS, "t", "tps", "Frames per second")
	p.Int64(&c.Seed, "s", "seed", "Seed for the initial soup (0 picks one from the clock)")
	p.Bool(&c.StartManual, "p", "paused", "Start in manual step mode")
	p.Duration(&c.Interval, "i", "interval", "Time between automatic generations, for example 66ms")
}

// Validate rejects values the simulator cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(life.ErrInvalidDimensions, "width=%d height=%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Interval <= 0 {
		return errors.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.HUDWidth < 0 {
		return errors.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// ResolveSeed replaces a zero seed with one taken from now and returns it.
func (c *Config) ResolveSeed(now func() time.Time) int64 {
	if c.Seed == 0 {
		c.Seed = now().UnixNano()
	}
	return c.Seed
}

// NewController builds a randomly seeded grid and the controller driving it.
func (c *Config) NewController() (*core.Controller, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	src := rng.NewRNG(c.ResolveSeed(time.Now))
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = c.Width, c.Height
	grid, err := life.New(cfg, life.FillRandom, src)
	if err != nil {
		return nil, errors.Wrap(err, "create grid")
	}
	return core.NewController(grid, src, core.ControllerOptions{
		Interval:    c.Interval.Seconds(),
		StartManual: c.StartManual,
	}), nil
}
