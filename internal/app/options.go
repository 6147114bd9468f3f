package app

import (
	"log"

	"bitlife/internal/board"
)

// Options converts the configuration into frame loop options.
func (c *Config) Options(logger *log.Logger) board.Options {
	return board.Options{
		FrameTicks: uint32(c.FrameTicks),
		Tick:       c.Tick,
		Edges:      c.EdgePolicy(),
		Seed:       c.Seed,
		MaxFrames:  c.Frames,
		Logger:     logger,
		Verbose:    c.Verbose,
	}
}
