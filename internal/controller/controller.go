// Package controller decides, once per frame, what happens to the grid.
package controller

import (
	"fmt"

	"bitlife/internal/input"
	"bitlife/pkg/life"
)

const (
	// CooldownFrames is how long B stays suppressed after an invert.
	CooldownFrames = 5
	// IdleLimit is how many empty frames are tolerated before reseeding.
	IdleLimit = 5
)

// Action is the single grid operation issued in a frame.
type Action uint8

const (
	ActionWait Action = iota
	ActionStep
	ActionRandomize
	ActionInvert
)

func (a Action) String() string {
	switch a {
	case ActionWait:
		return "wait"
	case ActionStep:
		return "step"
	case ActionRandomize:
		return "randomize"
	case ActionInvert:
		return "invert"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Controller owns the grid, its random source and the two frame counters.
type Controller struct {
	grid *life.Grid
	rng  life.Source

	bIgnore int
	idle    int
}

// New returns a controller with both counters at zero.
func New(grid *life.Grid, rng life.Source) *Controller {
	return &Controller{grid: grid, rng: rng}
}

// Grid returns the grid driven by the controller.
func (c *Controller) Grid() *life.Grid { return c.grid }

// Cooldown returns the frames left before B is honoured again.
func (c *Controller) Cooldown() int { return c.bIgnore }

// IdleFrames returns how many consecutive empty frames have been observed.
func (c *Controller) IdleFrames() int { return c.idle }

// Frame runs one frame of the decision procedure and reports what it did.
// A wins over B; B is ignored while the cooldown runs.
func (c *Controller) Frame(in input.State) Action {
	act := ActionWait
	switch {
	case in.A:
		c.grid.Randomize(c.rng)
		c.idle = 0
		act = ActionRandomize
	case in.B && c.bIgnore == 0:
		c.grid.Invert()
		c.bIgnore = CooldownFrames
		c.idle = 0
		act = ActionInvert
	case c.grid.IsEmpty():
		if c.idle < IdleLimit {
			c.idle++
		} else {
			c.grid.Randomize(c.rng)
			c.idle = 0
			act = ActionRandomize
		}
	default:
		c.grid.Step()
		c.idle = 0
		act = ActionStep
	}

	if c.bIgnore > 0 {
		c.bIgnore--
	}
	return act
}
