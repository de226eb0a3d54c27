//go:build ebiten

package render

import (
	"image/color"

	"lifecanvas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single RGBA image in sync with a grid snapshot.
type GridPainter struct {
	w, h   int
	cellPx int
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for rows x cols cells of cellPx pixels.
func NewGridPainter(rows, cols, cellPx int) *GridPainter {
	if cellPx <= 0 {
		cellPx = 1
	}
	w, h := cols*cellPx, rows*cellPx
	gp := &GridPainter{w: w, h: h, cellPx: cellPx, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Repaint uploads the grid into the painter image.
func (gp *GridPainter) Repaint(g *core.Grid, on, off color.Color) {
	if !FillRGBA(gp.buf, g, gp.cellPx, on, off) {
		return
	}
	gp.img.WritePixels(gp.buf)
}

// Draw blits the last repainted image at the origin of dst.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
