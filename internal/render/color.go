package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultColor is the fill used for live cells when none is configured.
const DefaultColor = "#fff"

// ErrInvalidColor is returned for strings that are not hex colors.
var ErrInvalidColor = errors.New("invalid color")

// Palette lists the colors offered by the color control.
var Palette = []string{
	"#fff",
	"#ff5555",
	"#ffb86c",
	"#f1fa8c",
	"#50fa7b",
	"#8be9fd",
	"#bd93f9",
	"#ff79c6",
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	trimmed := strings.TrimSpace(s)
	hex := strings.TrimPrefix(trimmed, "#")
	if len(hex) == len(trimmed) {
		return color.RGBA{}, fmt.Errorf("%w %q: missing '#'", ErrInvalidColor, s)
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w %q: want 3, 6 or 8 hex digits", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// PaletteIndex returns the position of s in Palette, or -1.
func PaletteIndex(s string) int {
	want, err := ParseColor(s)
	if err != nil {
		return -1
	}
	for i, p := range Palette {
		if c, err := ParseColor(p); err == nil && c == want {
			return i
		}
	}
	return -1
}

// CycleColor returns the palette entry direction steps away from current,
// wrapping at both ends. Colors outside the palette start from the first entry.
func CycleColor(current string, direction int) string {
	idx := PaletteIndex(current)
	if idx < 0 {
		return Palette[0]
	}
	n := len(Palette)
	return Palette[((idx+direction)%n+n)%n]
}
