package ui

import (
	"testing"

	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
)

func TestAdjustTargetIntClamps(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 10, Min: 1, Max: 100, HasMin: true, HasMax: true}
	if got, ok := adjustTarget(ctrl, 50, 1); !ok || got != 60 {
		t.Fatalf("got %d, %v", got, ok)
	}
	if got, ok := adjustTarget(ctrl, 5, -1); !ok || got != 1 {
		t.Fatalf("expected clamp to min, got %d, %v", got, ok)
	}
	if _, ok := adjustTarget(ctrl, 100, 1); ok {
		t.Fatal("step past max should be disabled")
	}
}

func TestAdjustTargetColorWraps(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeColor, Step: 1}
	last := len(render.Palette) - 1
	if got, _ := adjustTarget(ctrl, last, 1); got != 0 {
		t.Fatalf("got %d, want wrap to 0", got)
	}
	if got, _ := adjustTarget(ctrl, 0, -1); got != last {
		t.Fatalf("got %d, want wrap to %d", got, last)
	}
	if got, ok := adjustTarget(ctrl, -1, 1); !ok || got != 0 {
		t.Fatalf("unknown color should select the first entry, got %d", got)
	}
}

func TestAdjustTargetReadOnly(t *testing.T) {
	if _, ok := adjustTarget(core.ParameterControl{Type: core.ParamTypeText}, 0, 1); ok {
		t.Fatal("text parameters are not adjustable")
	}
}

func TestAtoiOr(t *testing.T) {
	if atoiOr("12", 3) != 12 || atoiOr("x", 3) != 3 {
		t.Fatal("atoiOr")
	}
}
