//go:build ebiten

package render

import (
	"image/color"

	"bitlife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// LEDPainter draws the 5x5 matrix as a panel of square LEDs.
type LEDPainter struct {
	scale int
	side  int
	img   *ebiten.Image
	buf   []byte
}

// NewLEDPainter allocates a painter whose LEDs are scale pixels wide.
func NewLEDPainter(scale int) *LEDPainter {
	side := PanelSize(scale)
	return &LEDPainter{
		scale: scale,
		side:  side,
		img:   ebiten.NewImage(side, side),
		buf:   make([]byte, 4*side*side),
	}
}

// Blit uploads the matrix into the painter image and draws it at (x, y).
func (p *LEDPainter) Blit(dst *ebiten.Image, m life.Matrix, on, off color.Color, x, y float64) {
	FillLEDs(p.buf, m, on, off, p.scale)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(p.img, op)
}

// Size returns the panel edge length in pixels.
func (p *LEDPainter) Size() int { return p.side }
