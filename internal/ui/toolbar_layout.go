package ui

import (
	"fmt"
	"image"
)

// Action is a user command issued from the toolbar or the keyboard.
type Action int

const (
	// ActionNone means the input did not map to a command.
	ActionNone Action = iota
	// ActionToggleRun starts a stopped simulation or stops a running one.
	ActionToggleRun
	// ActionClear empties the grid.
	ActionClear
	// ActionRandom reseeds the grid randomly.
	ActionRandom
	// ActionStep advances a stopped simulation by one generation.
	ActionStep
)

// BarHeight is the pixel height of the toolbar band above the grid.
const BarHeight = 32

// State is the slice of simulation state the toolbar displays.
type State struct {
	Running    bool
	Generation int
	Population int
	Stagnant   bool
}

// Button is a clickable toolbar region.
type Button struct {
	Action Action
	Rect   image.Rectangle
}

// Label returns the caption of a button in the given state.
func (b Button) Label(s State) string {
	switch b.Action {
	case ActionToggleRun:
		if s.Running {
			return "stop"
		}
		return "start"
	case ActionClear:
		return "clear"
	case ActionRandom:
		return "random"
	case ActionStep:
		return "step"
	}
	return ""
}

// LayoutButtons places the toolbar buttons left to right.
func LayoutButtons() []Button {
	order := []Action{ActionToggleRun, ActionClear, ActionRandom, ActionStep}
	buttons := make([]Button, len(order))
	x := buttonGap
	for i, a := range order {
		y := (BarHeight - buttonHeight) / 2
		buttons[i] = Button{Action: a, Rect: image.Rect(x, y, x+buttonWidth, y+buttonHeight)}
		x += buttonWidth + buttonGap
	}
	return buttons
}

// HitTest returns the action of the button containing (x, y).
func HitTest(buttons []Button, x, y int) Action {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b.Action
		}
	}
	return ActionNone
}

// StatusLine summarises the simulation for the right side of the toolbar.
func StatusLine(s State) string {
	line := fmt.Sprintf("gen %d  pop %d", s.Generation, s.Population)
	if s.Stagnant {
		line += "  stable"
	}
	return line
}

const (
	buttonWidth  = 56
	buttonHeight = 22
	buttonGap    = 6
)
