package core

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

const (
	// Dead is the value stored for a dead cell.
	Dead uint8 = 0
	// Alive is the value stored for a live cell.
	Alive uint8 = 1
)

// Grid stores a rows x cols snapshot of binary cells in row-major order.
// A grid handed out by any operation in this module is never modified again;
// operations that change cells return a new Grid.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// GridFromRows builds a grid from nested rows. Every row must have the same
// non-zero length and every value must be 0 or 1.
func GridFromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "[GridFromRows] empty grid")
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrInvalidGrid, "[GridFromRows] row %d has %d cells, want %d", r, len(row), cols)
		}
		for c, v := range row {
			if v != Dead && v != Alive {
				return nil, errors.Wrapf(ErrInvalidGrid, "[GridFromRows] cell (%d,%d) holds %d", r, c, v)
			}
			g.data[r*cols+c] = v
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Cells exposes the backing slice for read-only consumers such as renderers.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell value at (row, col). Cells outside the grid read as
// dead; the grid has hard edges.
func (g *Grid) At(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.data[row*g.cols+col]
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.At(row, col) == Alive }

// Clone returns a deep copy that can be modified before being published.
func (g *Grid) Clone() *Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// Set writes a cell. It is intended for grids under construction only.
func (g *Grid) Set(row, col int, v uint8) {
	if g.InBounds(row, col) {
		g.data[row*g.cols+col] = v
	}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols || len(g.data) != len(o.data) {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g *Grid) Population() (count int) {
	for _, v := range g.data {
		if v == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the cell contents.
func (g *Grid) Hash() string {
	h := md5.New()
	h.Write(g.data)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Validate checks the structural invariants of the grid.
func (g *Grid) Validate() error {
	if g == nil {
		return errors.Wrap(ErrInvalidGrid, "[Validate] nil grid")
	}
	if g.rows <= 0 || g.cols <= 0 || len(g.data) != g.rows*g.cols {
		return errors.Wrapf(ErrInvalidGrid, "[Validate] %dx%d grid backed by %d cells", g.rows, g.cols, len(g.data))
	}
	for i, v := range g.data {
		if v != Dead && v != Alive {
			return errors.Wrapf(ErrInvalidGrid, "[Validate] cell (%d,%d) holds %d", i/g.cols, i%g.cols, v)
		}
	}
	return nil
}
