// Package life implements Conway's Game of Life on a bounded grid together
// with the run/stop state machine that drives it.
package life

import (
	"github.com/pkg/errors"

	"lifeboard/internal/core"
)

const (
	// Rows is the fixed height of the board.
	Rows = 50
	// Cols is the fixed width of the board.
	Cols = 50
	// Threshold is the draw a cell must exceed to start alive when seeding
	// randomly, giving a live probability of 0.3.
	Threshold = 0.7

	// ModeEmpty resets to an all-dead grid.
	ModeEmpty = "empty"
	// ModeRandom reseeds every cell independently.
	ModeRandom = "random"
)

// EmptyGrid returns a board-sized grid with every cell dead.
func EmptyGrid() *core.Grid {
	return core.NewGrid(Rows, Cols)
}

// RandomGrid returns a board-sized grid where each cell is alive with
// probability 0.3.
func RandomGrid(rng *core.RNG) *core.Grid {
	return randomGrid(rng, core.Size{Rows: Rows, Cols: Cols})
}

func randomGrid(rng *core.RNG, size core.Size) *core.Grid {
	g := core.NewGrid(size.Rows, size.Cols)
	core.FillThreshold(rng, g.Cells(), Threshold)
	return g
}

// Step computes the next generation of cur. Cells beyond the edges count as
// dead. The result is a new grid; cur is left untouched.
func Step(cur *core.Grid) (*core.Grid, error) {
	if err := cur.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Step] refusing to advance")
	}
	next := core.NewGrid(cur.Rows(), cur.Cols())
	if err := StepInto(next, cur); err != nil {
		return nil, err
	}
	return next, nil
}

// StepInto writes the generation following src into dst. The two grids must
// be distinct and share dimensions.
func StepInto(dst, src *core.Grid) error {
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "[StepInto] invalid source")
	}
	if dst == nil || dst == src {
		return errors.Wrap(core.ErrInvalidGrid, "[StepInto] destination must be a separate buffer")
	}
	if dst.Size() != src.Size() {
		return errors.Wrapf(core.ErrInvalidGrid, "[StepInto] destination is %dx%d, source is %dx%d",
			dst.Rows(), dst.Cols(), src.Rows(), src.Cols())
	}
	advance(dst, src)
	return nil
}

// advance reads only from cur and writes every cell of next.
func advance(next, cur *core.Grid) {
	rows, cols := cur.Rows(), cur.Cols()
	in, out := cur.Cells(), next.Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			out[idx] = Rule(in[idx] == core.Alive, Neighbors(cur, r, c))
		}
	}
}

// Neighbors counts live cells among the eight cells surrounding (row, col).
func Neighbors(g *core.Grid, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			count += int(g.At(row+dr, col+dc))
		}
	}
	return count
}

// Rule returns the next value of a cell given its state and live neighbour
// count: survival on 2 or 3, birth on exactly 3.
func Rule(alive bool, neighbors int) uint8 {
	if neighbors == 3 || (alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}

// ToggleCell returns a copy of g with the cell at (row, col) flipped.
func ToggleCell(g *core.Grid, row, col int) (*core.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "[ToggleCell] invalid grid")
	}
	if !g.InBounds(row, col) {
		return nil, errors.Wrapf(core.ErrOutOfRange, "[ToggleCell] (%d,%d) outside %dx%d grid", row, col, g.Rows(), g.Cols())
	}
	next := g.Clone()
	next.Set(row, col, core.Alive-g.At(row, col))
	return next, nil
}

// Reset builds a replacement board grid using the seeder registered for mode.
func Reset(mode string, rng *core.RNG) (*core.Grid, error) {
	seed, ok := core.Seeders()[mode]
	if !ok {
		return nil, errors.Wrapf(core.ErrUnknownMode, "[Reset] mode %q", mode)
	}
	return seed(rng, core.Size{Rows: Rows, Cols: Cols}), nil
}

func init() {
	core.RegisterSeeder(ModeEmpty, func(_ *core.RNG, size core.Size) *core.Grid {
		return core.NewGrid(size.Rows, size.Cols)
	})
	core.RegisterSeeder(ModeRandom, randomGrid)
}
