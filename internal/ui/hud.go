//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/session"
	"lifecanvas/internal/throttle"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controller is the part of a session the HUD drives.
type Controller interface {
	Running() bool
	Toggle()
	Randomize()
	Clear()
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

// HUD renders the control panel to the right of the grid.
type HUD struct {
	ctrl       Controller
	inputs     *throttle.Throttle
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	buttons      []hudButton
	controls     []hudControlState
	panelOffsetX int
	readoutTop   int

	pixel *ebiten.Image
}

type hudButton struct {
	label  func() string
	action func()
	rect   image.Rectangle
}

// NewHUD constructs a HUD for ctrl. Speed and color adjustments pass through
// inputs before reaching the controller.
func NewHUD(ctrl Controller, width int, inputs *throttle.Throttle) *HUD {
	if width < 0 {
		width = 0
	}
	if inputs == nil {
		inputs = throttle.New(throttle.DefaultWindow)
	}
	h := &HUD{ctrl: ctrl, width: width, inputs: inputs}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.buttons = []hudButton{
		{label: h.startLabel, action: ctrl.Toggle},
		{label: func() string { return "Randomize" }, action: ctrl.Randomize},
		{label: func() string { return "Clear" }, action: ctrl.Clear},
	}
	controls := ctrl.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, c := range controls {
		h.controls[i] = hudControlState{control: c, value: "--"}
	}
	h.layout()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameters and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.ctrl.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Contains reports whether screen point (x, y) lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && h.width > 0 && x >= h.panelOffsetX && x < h.panelOffsetX+h.width && y >= 0
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawButtons()
	h.drawControls()
	h.drawReadout()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) startLabel() string {
	if h.ctrl.Running() {
		return "Stop"
	}
	return "Start"
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
		state.value = param.Value
		state.hasValue = true
		switch state.control.Type {
		case core.ParamTypeInt:
			state.intValue = atoiOr(param.Value, state.intValue)
		case core.ParamTypeColor:
			state.intValue = render.PaletteIndex(param.Value)
			if fill, err := render.ParseColor(param.Value); err == nil {
				state.swatch = fill
			}
		}
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for _, b := range h.buttons {
		if pointInRect(px, my, b.rect) {
			b.action()
			return
		}
	}
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
	target, ok := adjustTarget(state.control, state.intValue, direction)
	if !ok {
		return
	}
	h.inputs.Do(func() {
		if h.ctrl.SetIntParameter(state.control.Key, target) {
			state.intValue = target
		}
	})
}

func (h *HUD) drawButtons() {
	for _, b := range h.buttons {
		h.drawButton(b.rect, b.label(), true)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueColor := color.Color(color.RGBA{R: 220, G: 220, B: 230, A: 255})
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		} else if state.control.Type == core.ParamTypeColor {
			valueColor = state.swatch
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusOK := adjustTarget(state.control, state.intValue, -1)
		_, plusOK := adjustTarget(state.control, state.intValue, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusOK)
		h.drawButton(state.plusRect, "+", state.hasValue && plusOK)
	}
}

func (h *HUD) drawReadout() {
	face := basicfont.Face7x13
	y := h.readoutTop
	for _, key := range []string{session.KeyPopulation, session.KeyGeneration, session.KeyState} {
		p, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += infoSpacing
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

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	top := panelPadding
	for i := range h.buttons {
		h.buttons[i].rect = image.Rect(panelPadding, top, h.width-panelPadding, top+buttonSize)
		top += buttonSize + buttonGap
	}
	top += buttonGap
	for i := range h.controls {
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
		top += lineHeight
	}
	h.readoutTop = top + infoSpacing
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool
	swatch   color.RGBA

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding  = 12
	lineHeight    = 36
	buttonSize    = 24
	buttonGap     = 6
	labelBaseline = 24
	infoSpacing   = 20
)
