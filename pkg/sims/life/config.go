package life

import "strconv"

// Config holds parameters for the Life grid.
type Config struct {
	Width  int
	Height int
	Rule   Rule
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 200, Height: 200, Rule: DefaultRule()}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["live"]; ok {
		if parsed, ok := parseThreshold(v); ok {
			c.Rule.Live = parsed
		}
	}
	if v, ok := cfg["die_lower"]; ok {
		if parsed, ok := parseThreshold(v); ok {
			c.Rule.DieLower = parsed
		}
	}
	if v, ok := cfg["die_upper"]; ok {
		if parsed, ok := parseThreshold(v); ok {
			c.Rule.DieUpper = parsed
		}
	}
	return c
}

func parseThreshold(v string) (uint8, bool) {
	parsed, err := strconv.ParseUint(v, 10, 8)
	if err != nil || parsed > maxNeighbors {
		return 0, false
	}
	return uint8(parsed), true
}
