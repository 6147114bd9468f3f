package life

import (
	"fmt"
	"strings"
)

// Edges selects how neighbours are counted past the border.
type Edges uint8

const (
	// Bounded treats every cell outside the grid as permanently dead.
	Bounded Edges = iota
	// Toroidal wraps coordinates so opposite borders touch.
	Toroidal
)

func (e Edges) String() string {
	switch e {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	}
	return fmt.Sprintf("Edges(%d)", uint8(e))
}

// ParseEdges maps a policy name onto an Edges value.
func ParseEdges(s string) (Edges, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "finite", "":
		return Bounded, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown edge policy %q", s)
}
