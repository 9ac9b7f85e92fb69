//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifeboard/internal/core"
	"lifeboard/internal/life"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
)

var keyActions = map[ebiten.Key]ui.Action{
	ebiten.KeySpace: ui.ActionToggleRun,
	ebiten.KeyC:     ui.ActionClear,
	ebiten.KeyR:     ui.ActionRandom,
	ebiten.KeyN:     ui.ActionStep,
}

// Game adapts a life loop to the ebiten.Game interface.
type Game struct {
	loop    *life.Loop
	ctl     *Controller
	layout  render.Layout
	painter *render.GridPainter
	toolbar *ui.Toolbar
}

// New constructs a Game drawing the loop's board with cfg.Cell pixel cells.
func New(loop *life.Loop, cfg *Config) *Game {
	size := core.Size{Rows: life.Rows, Cols: life.Cols}
	layout := render.NewLayout(size, cfg.Cell, ui.BarHeight)
	palette := render.Palette{
		On:     color.RGBA{R: 255, G: 192, B: 203, A: 255},
		Off:    color.RGBA{R: 24, G: 24, B: 28, A: 255},
		Border: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
	return &Game{
		loop:    loop,
		ctl:     NewController(loop, layout),
		layout:  layout,
		painter: render.NewGridPainter(layout, palette),
		toolbar: ui.NewToolbar(layout.Width()),
	}
}

// Update handles per-frame input and fires due simulation ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.ctl.Apply(action); err != nil {
				return err
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if err := g.ctl.Click(x, y); err != nil {
			return err
		}
	}
	return g.ctl.Update()
}

// Draw renders the toolbar and the current grid snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.toolbar.Draw(screen, g.ctl.State())
	g.painter.Blit(screen, g.loop.Board().Grid())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width(), g.layout.OriginY + g.layout.Height()
}
