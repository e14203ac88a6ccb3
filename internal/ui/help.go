package ui

// HelpLines lists the key bindings shared by every front-end.
var HelpLines = []string{
	"S      step (manual)",
	"Space  toggle manual/automatic",
	"R      randomize",
	"C      clear and pause",
	"Click  toggle cell",
	"H      hide help",
	"Q/Esc  quit",
}
