package render

import "image/color"

// Palette holds the colors used to paint a grid.
type Palette struct {
	On     color.Color
	Off    color.Color
	Border color.Color
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillGridRGBA paints binary cells into buf, which must hold
// 4*l.Width()*l.Height() bytes.
func fillGridRGBA(buf []byte, l Layout, cells []uint8, p Palette) {
	on, off, border := rgba(p.On), rgba(p.Off), rgba(p.Border)
	w, h := l.Width(), l.Height()
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			base := (py*w + px) * 4
			col := off
			switch {
			case px%l.Pitch == 0 || py%l.Pitch == 0:
				col = border
			case cells[(py/l.Pitch)*l.Cols+px/l.Pitch] != 0:
				col = on
			}
			copy(buf[base:base+4], col[:])
		}
	}
}
