//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"cave-golf/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source feeds the HUD. Implementations may also satisfy
// core.IntParameterSetter and core.FloatParameterSetter to make controls
// clickable.
type Source interface {
	Title() string
	Status() []string
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
}

// HUD renders the parameter panel to the right of the level view.
type HUD struct {
	src        Source
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     []string

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	controls := src.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width is the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles clicks on the panel,
// which starts at panelOffsetX on screen.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.status = h.src.Status()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	params := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			params[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := params[state.control.Key]
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			if parsed, err := strconv.Atoi(param.Value); err == nil {
				state.intValue = parsed
				state.floatValue = float64(parsed)
				state.value = strconv.Itoa(parsed)
				state.hasValue = true
			}
		case core.ParamTypeFloat:
			if parsed, err := strconv.ParseFloat(param.Value, 64); err == nil {
				state.floatValue = parsed
				state.value = formatFloat(state.control, parsed)
				state.hasValue = true
			}
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	p := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case p.In(state.minusRect):
			h.applyAdjustment(state, -1)
			return
		case p.In(state.plusRect):
			h.applyAdjustment(state, 1)
			return
		}
	}
}

// target computes the value one step away, or false when the step would
// leave the control range or no setter accepts the type.
func (h *HUD) target(state *hudControlState, direction int) (float64, bool) {
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
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
	v := state.floatValue + float64(direction)*step
	if ctrl.HasMin && direction < 0 && v < ctrl.Min-1e-9 {
		return 0, false
	}
	if ctrl.HasMax && direction > 0 && v > ctrl.Max+1e-9 {
		return 0, false
	}
	return v, true
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	v, ok := h.target(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		n := int(math.Round(v))
		if h.intSetter.SetIntParameter(state.control.Key, n) {
			state.intValue, state.floatValue = n, float64(n)
			state.value = strconv.Itoa(n)
		}
	case core.ParamTypeFloat:
		if h.floatSetter.SetFloatParameter(state.control.Key, v) {
			state.floatValue = v
			state.value = formatFloat(state.control, v)
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.src.Title(), face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, textColor)
		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minus := h.target(state, -1)
		_, plus := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minus)
		h.drawButton(state.plusRect, "+", state.hasValue && plus)
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + statusSpacing
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += statusSpacing
	}
	text.Draw(h.panel, "space: next  r: redo  s: new seed", face, panelPadding, y+statusSpacing, dimColor)
	text.Draw(h.panel, "g: grid  1-3: overlays  q: quit", face, panelPadding, y+2*statusSpacing, dimColor)
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

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	textColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
