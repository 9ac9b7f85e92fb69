package render

import "lifeboard/internal/core"

// Layout maps grid cells to screen pixels. Each cell occupies a Pitch x Pitch
// square whose top and left pixel lines are border, and one extra line closes
// the grid on the right and bottom.
type Layout struct {
	Rows, Cols int
	Pitch      int
	OriginY    int
}

// NewLayout builds a layout for a grid of the given size drawn below a band
// of originY pixels. Pitches under 2 leave no room for a border and are raised.
func NewLayout(size core.Size, pitch, originY int) Layout {
	if pitch < 2 {
		pitch = 2
	}
	if originY < 0 {
		originY = 0
	}
	return Layout{Rows: size.Rows, Cols: size.Cols, Pitch: pitch, OriginY: originY}
}

// Width returns the pixel width of the grid image.
func (l Layout) Width() int { return l.Cols*l.Pitch + 1 }

// Height returns the pixel height of the grid image.
func (l Layout) Height() int { return l.Rows*l.Pitch + 1 }

// CellAt converts screen coordinates to a cell. Border pixels resolve to the
// cell below or to the right of them.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	y -= l.OriginY
	if x < 0 || y < 0 || x >= l.Width() || y >= l.Height() {
		return 0, 0, false
	}
	row, col = y/l.Pitch, x/l.Pitch
	if row >= l.Rows {
		row = l.Rows - 1
	}
	if col >= l.Cols {
		col = l.Cols - 1
	}
	return row, col, true
}
