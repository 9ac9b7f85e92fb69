package app

import (
	"lifeboard/internal/life"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
)

// Controller turns toolbar, keyboard and grid input into board operations.
// It holds no rendering state, so hosts other than the GUI can drive it.
type Controller struct {
	loop    *life.Loop
	layout  render.Layout
	buttons []ui.Button
}

// NewController binds a loop to the screen layout used for hit testing.
func NewController(loop *life.Loop, layout render.Layout) *Controller {
	return &Controller{loop: loop, layout: layout, buttons: ui.LayoutButtons()}
}

// Apply executes a toolbar action.
func (c *Controller) Apply(a ui.Action) error {
	board := c.loop.Board()
	switch a {
	case ui.ActionToggleRun:
		c.loop.SetRunning(!c.loop.Running())
	case ui.ActionClear:
		return board.Reset(life.ModeEmpty)
	case ui.ActionRandom:
		return board.Reset(life.ModeRandom)
	case ui.ActionStep:
		if !c.loop.Running() {
			return board.Step()
		}
	}
	return nil
}

// Click handles a primary click at screen coordinates (x, y).
func (c *Controller) Click(x, y int) error {
	if y < c.layout.OriginY {
		return c.Apply(ui.HitTest(c.buttons, x, y))
	}
	row, col, ok := c.layout.CellAt(x, y)
	if !ok {
		return nil
	}
	return c.loop.Board().Toggle(row, col)
}

// Update fires the pending simulation tick when due.
func (c *Controller) Update() error {
	_, err := c.loop.Update()
	return err
}

// State reports what the toolbar should display.
func (c *Controller) State() ui.State {
	board := c.loop.Board()
	return ui.State{
		Running:    board.Running(),
		Generation: board.Generation(),
		Population: board.Population(),
		Stagnant:   board.Stagnant(),
	}
}
