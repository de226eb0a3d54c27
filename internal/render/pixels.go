package render

import (
	"image/color"

	"lifecanvas/internal/core"
)

// SurfaceSize returns the pixel dimensions needed to draw g at cellPx.
func SurfaceSize(g *core.Grid, cellPx int) (w, h int) {
	if cellPx <= 0 {
		cellPx = 1
	}
	return g.Cols * cellPx, g.Rows * cellPx
}

// FillRGBA clears buf to off and paints every live cell of g as a square of
// cellPx-1 pixels at (col*cellPx, row*cellPx), leaving a one pixel gutter on
// the right and bottom of each cell. buf must hold SurfaceSize*4 bytes; a
// shorter buffer is left untouched.
func FillRGBA(buf []byte, g *core.Grid, cellPx int, on, off color.Color) bool {
	if cellPx <= 0 {
		cellPx = 1
	}
	w, h := SurfaceSize(g, cellPx)
	if len(buf) < w*h*4 {
		return false
	}
	offPx := toRGBA(off)
	for i := 0; i < w*h; i++ {
		putPixel(buf, i*4, offPx)
	}

	side := cellPx - 1
	if side < 1 {
		side = 1
	}
	onPx := toRGBA(on)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(row, col) != core.Alive {
				continue
			}
			x0, y0 := col*cellPx, row*cellPx
			for y := y0; y < y0+side; y++ {
				base := (y*w + x0) * 4
				for x := 0; x < side; x++ {
					putPixel(buf, base+x*4, onPx)
				}
			}
		}
	}
	return true
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func putPixel(buf []byte, base int, c color.RGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
