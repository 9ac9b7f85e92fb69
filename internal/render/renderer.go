//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifeboard/internal/core"
)

// GridPainter keeps an RGBA image of the last painted grid snapshot.
type GridPainter struct {
	layout  Layout
	palette Palette
	img     *ebiten.Image
	buf     []byte
	last    *core.Grid
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout, p Palette) *GridPainter {
	return &GridPainter{
		layout:  l,
		palette: p,
		img:     ebiten.NewImage(l.Width(), l.Height()),
		buf:     make([]byte, 4*l.Width()*l.Height()),
	}
}

// Blit draws g below the layout origin. Snapshots are immutable, so pixels
// are only rebuilt when a different grid is passed in.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid) {
	if g == nil || g.Rows() != gp.layout.Rows || g.Cols() != gp.layout.Cols {
		return
	}
	if g != gp.last {
		fillGridRGBA(gp.buf, gp.layout, g.Cells(), gp.palette)
		gp.img.WritePixels(gp.buf)
		gp.last = g
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(gp.layout.OriginY))
	dst.DrawImage(gp.img, op)
}
