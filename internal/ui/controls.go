// Package ui draws the control panel next to the grid in the GUI build.
package ui

import (
	"strconv"

	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
)

// adjustTarget computes the value one step from current. Colors wrap around
// the palette; integers clamp to the control bounds. ok is false when the
// step would not change anything.
func adjustTarget(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	switch ctrl.Type {
	case core.ParamTypeColor:
		n := len(render.Palette)
		if current < 0 {
			return 0, true
		}
		return ((current+direction*step)%n + n) % n, true
	case core.ParamTypeInt:
		target := ctrl.Clamp(current + direction*step)
		return target, target != current
	}
	return 0, false
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
