//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"bitlife/internal/board"
	"bitlife/internal/core"
	"bitlife/internal/render"
	"bitlife/internal/ui"
	"bitlife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 160

// key is a button wired to a keyboard key. Like the real buttons it pulls
// its line low while held.
type key ebiten.Key

func (k key) Get() (bool, error) {
	return !ebiten.IsKeyPressed(ebiten.Key(k)), nil
}

// Game adapts the board machine to the ebiten.Game interface and acts as its
// LED display.
type Game struct {
	machine *board.Machine
	painter *render.LEDPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	shown life.Matrix
}

// New constructs a Game, claiming the keyboard, the window and the wall clock.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	g := &Game{
		painter:  render.NewLEDPainter(cfg.Scale),
		onColor:  color.RGBA{R: 255, G: 40, B: 20, A: 255},
		offColor: color.RGBA{R: 24, G: 8, B: 8, A: 255},
	}
	b := board.Board{
		Clock:   core.NewWallClock(cfg.Tick),
		A:       key(ebiten.KeyA),
		B:       key(ebiten.KeyB),
		Display: g,
		Entropy: board.SystemEntropy{},
	}
	m, err := board.New(b, cfg.Options(logger))
	if err != nil {
		return nil, err
	}
	g.machine = m
	g.hud = ui.NewHUD(m, hudWidth)
	return g, nil
}

// Machine returns the underlying frame loop.
func (g *Game) Machine() *board.Machine { return g.machine }

// Show stores the matrix to be painted on the next Draw.
func (g *Game) Show(m life.Matrix, _ time.Duration) {
	g.shown = m
}

// Update polls the frame gate once per ebiten tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.hud.Update(ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyB))
	_, err := g.machine.Poll()
	return err
}

// Draw renders the LED panel and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.shown, g.onColor, g.offColor, 0, 0)
	g.hud.Draw(screen, g.painter.Size(), g.painter.Size())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.painter.Size()
	return side + hudWidth, side
}
