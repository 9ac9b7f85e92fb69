package life

import (
	"github.com/pkg/errors"

	"lifeboard/internal/core"
)

// Board owns the current grid snapshot and the running flag. It is not safe
// for concurrent use; hosts drive it from a single update goroutine.
type Board struct {
	grid       *core.Grid
	running    bool
	generation int
	rng        *core.RNG
	history    History
}

// NewBoard returns a stopped board seeded with a random grid.
func NewBoard(rng *core.RNG) *Board {
	if rng == nil {
		rng = core.NewTimeRNG()
	}
	b := &Board{rng: rng}
	b.replace(RandomGrid(rng))
	return b
}

// Grid returns the current snapshot. Callers may keep it; it never changes.
func (b *Board) Grid() *core.Grid { return b.grid }

// Running reports whether the simulation is meant to advance.
func (b *Board) Running() bool { return b.running }

// SetRunning sets the running flag. Scheduling is handled by Loop.
func (b *Board) SetRunning(v bool) { b.running = v }

// Generation returns the number of steps applied since the last replacement.
func (b *Board) Generation() int { return b.generation }

// Population counts live cells in the current snapshot.
func (b *Board) Population() int { return b.grid.Population() }

// Stagnant reports whether the board has settled into a still life or an
// oscillator with period up to 3.
func (b *Board) Stagnant() bool { return b.history.Stagnant() }

// Step advances the board by one generation regardless of the running flag.
func (b *Board) Step() error {
	next, err := Step(b.grid)
	if err != nil {
		return errors.Wrap(err, "[Board.Step] failed")
	}
	b.grid = next
	b.generation++
	b.history.Record(next)
	return nil
}

// Toggle flips the cell at (row, col).
func (b *Board) Toggle(row, col int) error {
	next, err := ToggleCell(b.grid, row, col)
	if err != nil {
		return errors.Wrap(err, "[Board.Toggle] failed")
	}
	b.edit(next)
	return nil
}

// Reset replaces the grid using the named mode and restarts the generation
// counter.
func (b *Board) Reset(mode string) error {
	next, err := Reset(mode, b.rng)
	if err != nil {
		return errors.Wrap(err, "[Board.Reset] failed")
	}
	b.replace(next)
	return nil
}

// SetGrid replaces the grid wholesale. The grid must match the board size.
func (b *Board) SetGrid(g *core.Grid) error {
	if err := g.Validate(); err != nil {
		return errors.Wrap(err, "[Board.SetGrid] failed")
	}
	if g.Rows() != Rows || g.Cols() != Cols {
		return errors.Wrapf(core.ErrInvalidGrid, "[Board.SetGrid] got %dx%d, want %dx%d", g.Rows(), g.Cols(), Rows, Cols)
	}
	b.replace(g)
	return nil
}

func (b *Board) replace(g *core.Grid) {
	b.generation = 0
	b.edit(g)
}

// edit swaps in a hand-made grid; stagnation tracking starts over from it.
func (b *Board) edit(g *core.Grid) {
	b.grid = g
	b.history.Clear()
	b.history.Record(g)
}
