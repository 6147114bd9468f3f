package render

import (
	"image/color"

	"bitlife/pkg/life"
)

// LEDGap is the dark border, in pixels, drawn around each LED.
const LEDGap = 1

// PanelSize returns the edge length in pixels of a panel whose LEDs are
// scale pixels wide.
func PanelSize(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return life.Size*(scale+2*LEDGap)
}

// FillLEDs converts the matrix into RGBA pixels in buf. buf must hold
// 4*PanelSize(scale)^2 bytes; gaps between LEDs are painted with off.
func FillLEDs(buf []byte, m life.Matrix, on, off color.Color, scale int) {
	if scale < 1 {
		scale = 1
	}
	side := PanelSize(scale)
	if len(buf) < 4*side*side {
		return
	}
	cell := scale + 2*LEDGap
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for py := 0; py < side; py++ {
		for px := 0; px < side; px++ {
			base := (py*side + px) * 4
			x, ox := px/cell, px%cell
			y, oy := py/cell, py%cell
			lit := m[y][x] != 0 &&
				ox >= LEDGap && ox < cell-LEDGap &&
				oy >= LEDGap && oy < cell-LEDGap
			if lit {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
