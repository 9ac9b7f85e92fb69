//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	barColor     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	startColor   = color.RGBA{R: 0x8b, G: 0xc3, B: 0x4a, A: 255}
	stopColor    = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	buttonColor  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	labelColor   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	disableColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	statusColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// Toolbar draws the control buttons and status line above the grid.
type Toolbar struct {
	width   int
	buttons []Button
}

// NewToolbar builds a toolbar spanning width pixels.
func NewToolbar(width int) *Toolbar {
	return &Toolbar{width: width, buttons: LayoutButtons()}
}

// Draw paints the toolbar for state s.
func (t *Toolbar) Draw(screen *ebiten.Image, s State) {
	vector.DrawFilledRect(screen, 0, 0, float32(t.width), BarHeight, barColor, false)
	for _, b := range t.buttons {
		bg, fg := buttonColor, labelColor
		switch {
		case b.Action == ActionToggleRun && s.Running:
			bg = stopColor
		case b.Action == ActionToggleRun:
			bg = startColor
		case b.Action == ActionStep && s.Running:
			fg = disableColor
		}
		drawButton(screen, b.Rect, b.Label(s), bg, fg)
	}

	face := basicfont.Face7x13
	status := StatusLine(s)
	bounds := text.BoundString(face, status)
	x := t.width - buttonGap - bounds.Dx()
	y := (BarHeight + bounds.Dy()) / 2
	text.Draw(screen, status, face, x, y, statusColor)
}

func drawButton(dst *ebiten.Image, rect image.Rectangle, label string, bg, fg color.Color) {
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}
