package life

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":         "64",
		"h":         "48",
		"live":      "2",
		"die_lower": "1",
		"die_upper": "9",
	})
	if c.Width != 64 || c.Height != 48 {
		t.Fatalf("size %dx%d, expected 64x48", c.Width, c.Height)
	}
	if c.Rule.Live != 2 || c.Rule.DieLower != 1 {
		t.Fatalf("rule %+v did not pick up live/die_lower", c.Rule)
	}
	if c.Rule.DieUpper != DefaultRule().DieUpper {
		t.Fatalf("out-of-range die_upper accepted: %d", c.Rule.DieUpper)
	}
}

func TestFromMapDefaults(t *testing.T) {
	c := FromMap(map[string]string{"w": "-3", "h": "abc"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values changed config: %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield the default config")
	}
}
