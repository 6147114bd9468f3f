package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"bitlife/internal/board"
	"bitlife/internal/core"
	"bitlife/internal/input"
	"bitlife/internal/render"
)

// NewHeadless builds a machine that prints frames to out and replays the
// configured button scripts.
func NewHeadless(cfg *Config, out io.Writer, logger *log.Logger) (*board.Machine, error) {
	a, err := input.ParseScript(cfg.ScriptA)
	if err != nil {
		return nil, fmt.Errorf("press_a: %w", err)
	}
	b, err := input.ParseScript(cfg.ScriptB)
	if err != nil {
		return nil, fmt.Errorf("press_b: %w", err)
	}
	return board.New(board.Board{
		Clock:   core.NewWallClock(cfg.Tick),
		A:       a,
		B:       b,
		Display: &render.TextDisplay{W: out},
		Entropy: board.SystemEntropy{},
	}, cfg.Options(logger))
}

// RunHeadless runs the machine until ctx ends or the frame limit is reached.
func RunHeadless(ctx context.Context, m *board.Machine) error {
	return m.Run(ctx, m.FrameDuration()/10)
}
