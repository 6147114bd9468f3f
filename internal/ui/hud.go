//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"bitlife/internal/controller"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 12
	lineSpacing    = 16
	buttonSize     = 22
	buttonGap      = 8
)

// Status is the machine state the HUD reports on.
type Status interface {
	Frames() uint64
	LastAction() controller.Action
	Controller() *controller.Controller
	Seed() uint64
}

// HUD renders the frame counters and button lamps beside the LED panel.
type HUD struct {
	status     Status
	width      int
	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image

	pressedA bool
	pressedB bool
}

// NewHUD constructs a HUD for the machine with the given panel width.
func NewHUD(status Status, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{status: status, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update records the button levels seen this tick.
func (h *HUD) Update(a, b bool) {
	if h == nil {
		return
	}
	h.pressedA, h.pressedB = a, b
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	label := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	value := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	ctrl := h.status.Controller()
	lines := []string{
		fmt.Sprintf("frame  %d", h.status.Frames()),
		fmt.Sprintf("action %s", h.status.LastAction()),
		fmt.Sprintf("b wait %d", ctrl.Cooldown()),
		fmt.Sprintf("idle   %d", ctrl.IdleFrames()),
		fmt.Sprintf("alive  %d", ctrl.Grid().Population()),
		fmt.Sprintf("seed   %#x", h.status.Seed()),
	}
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "bitlife", face, panelPadding, y, label)
	for _, line := range lines {
		y += lineSpacing
		text.Draw(h.panel, line, face, panelPadding, y, value)
	}

	y += lineSpacing / 2
	a := image.Rect(panelPadding, y, panelPadding+buttonSize, y+buttonSize)
	b := a.Add(image.Pt(buttonSize+buttonGap, 0))
	h.drawButton(a, "A", h.pressedA)
	h.drawButton(b, "B", h.pressedB)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, pressed bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 32, G: 34, B: 40, A: 255}
	fg := color.RGBA{R: 120, G: 120, B: 130, A: 255}
	if pressed {
		bg = color.RGBA{R: 200, G: 60, B: 40, A: 255}
		fg = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
