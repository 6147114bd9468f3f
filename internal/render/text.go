package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"bitlife/pkg/life"
)

// Text renders the matrix as five lines of '#' (lit) and '.' (dark).
func Text(m life.Matrix) string {
	var sb strings.Builder
	for _, row := range m {
		for _, c := range row {
			if c != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TextDisplay prints every frame it is shown, separated by a blank line.
type TextDisplay struct {
	W io.Writer
}

// Show writes the matrix to W. Write errors are dropped; a display has no
// one to report them to.
func (d *TextDisplay) Show(m life.Matrix, _ time.Duration) {
	fmt.Fprintf(d.W, "%s\n", Text(m))
}
