//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/taucannonfox/rustlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ParameterProvider is the state source rendered by the HUD.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// statusKeys are the read-only values listed above the controls.
var statusKeys = []string{"generation", "population", "manual"}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	src        ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(src ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.number = parsed
		state.value = formatValue(state.control, parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target, ok := h.target(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil && h.intSetter.SetIntParameter(state.control.Key, int(target)) {
			state.number = target
			state.value = formatValue(state.control, target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.number = target
			state.value = formatValue(state.control, target)
		}
	}
}

// target returns the value one step away in direction, or false when the
// step would leave the control's bounds or no setter accepts its type.
func (h *HUD) target(state *hudControlState, direction int) (float64, bool) {
	if state == nil || direction == 0 {
		return 0, false
	}
	step := state.control.Step
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	target := state.number + float64(direction)*step
	// Absorb float drift from repeated steps.
	target = math.Round(target/step) * step
	if target < state.control.Min-1e-9 || target > state.control.Max+1e-9 {
		return 0, false
	}
	return target, true
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Life", face, panelPadding, panelPadding+headerBaseline, headerColor)
	for i, key := range statusKeys {
		param, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		y := panelPadding + headerBaseline + (i+1)*statusSpacing
		text.Draw(h.panel, param.Label, face, panelPadding, y, labelColor)
		bounds := text.BoundString(face, param.Value)
		text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = disabledColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusEnabled := h.target(state, -1)
		_, plusEnabled := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusEnabled)
		h.drawButton(state.plusRect, "+", state.hasValue && plusEnabled)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	number   float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	headerColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	disabledColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 18
	statusLines    = 3
	controlsTop    = panelPadding + headerBaseline + (statusLines+1)*statusSpacing
)
