// Package board wires the automaton to its hardware capabilities and runs
// the frame loop.
package board

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"bitlife/internal/controller"
	"bitlife/internal/core"
	"bitlife/internal/input"
	pcore "bitlife/pkg/core"
	"bitlife/pkg/life"
)

var (
	// ErrInit wraps any failure while claiming board capabilities.
	ErrInit = errors.New("board init")
	// ErrInput wraps button read failures inside the frame loop.
	ErrInput = errors.New("input read")
)

// Display renders the current matrix for one frame.
type Display interface {
	Show(m life.Matrix, frame time.Duration)
}

// Entropy yields a seed for the random source.
type Entropy interface {
	Seed() (uint64, error)
}

// Board is the capability set the machine runs on.
type Board struct {
	Clock   core.TickSource
	A, B    input.Pin
	Display Display
	Entropy Entropy
}

// Options tune the frame loop.
type Options struct {
	FrameTicks uint32
	Tick       time.Duration
	Edges      life.Edges

	// Seed overrides the entropy source when non-zero.
	Seed uint64

	// MaxFrames stops Run after that many frames. Zero runs forever.
	MaxFrames uint64

	Logger  *log.Logger
	Verbose bool
}

// Machine runs the automaton one frame at a time.
type Machine struct {
	gate    *core.FrameGate
	sampler *input.Sampler
	ctrl    *controller.Controller
	display Display
	logger  *log.Logger
	verbose bool

	frameDur time.Duration
	limit    uint64
	frames   uint64
	seed     uint64
	last     controller.Action
}

// New claims the board, seeds the grid and shows the first generation.
func New(b Board, opts Options) (*Machine, error) {
	switch {
	case b.Clock == nil:
		return nil, fmt.Errorf("%w: no frame clock", ErrInit)
	case b.A == nil || b.B == nil:
		return nil, fmt.Errorf("%w: missing button", ErrInit)
	case b.Display == nil:
		return nil, fmt.Errorf("%w: no display", ErrInit)
	}

	if opts.FrameTicks == 0 {
		opts.FrameTicks = core.DefaultFrameTicks
	}
	if opts.Tick <= 0 {
		opts.Tick = core.DefaultTick
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	seed := opts.Seed
	if seed == 0 {
		if b.Entropy == nil {
			seed = pcore.DefaultSeed
			logger.Printf("no entropy source, using fixed seed %#x", seed)
		} else {
			s, err := b.Entropy.Seed()
			if err != nil {
				return nil, fmt.Errorf("%w: entropy: %w", ErrInit, err)
			}
			seed = s
		}
	}

	grid := life.NewGrid(opts.Edges)
	rng := pcore.NewRNG(seed)
	grid.Randomize(rng)

	m := &Machine{
		gate:     core.NewFrameGate(b.Clock, opts.FrameTicks),
		sampler:  &input.Sampler{A: b.A, B: b.B},
		ctrl:     controller.New(grid, rng),
		display:  b.Display,
		logger:   logger,
		verbose:  opts.Verbose,
		frameDur: time.Duration(opts.FrameTicks) * opts.Tick,
		limit:    opts.MaxFrames,
		seed:     seed,
		last:     controller.ActionRandomize,
	}
	m.display.Show(grid.Cells(), m.frameDur)
	return m, nil
}

// Seed returns the seed the random source was started with.
func (m *Machine) Seed() uint64 { return m.seed }

// Frames returns the number of frames run so far.
func (m *Machine) Frames() uint64 { return m.frames }

// LastAction returns the action taken in the most recent frame.
func (m *Machine) LastAction() controller.Action { return m.last }

// Controller exposes the frame state machine for inspection.
func (m *Machine) Controller() *controller.Controller { return m.ctrl }

// FrameDuration is the wall time of one frame.
func (m *Machine) FrameDuration() time.Duration { return m.frameDur }

// Poll runs a frame if one is due and reports whether it did.
func (m *Machine) Poll() (bool, error) {
	if !m.gate.Ready() {
		return false, nil
	}
	return true, m.Frame()
}

// Frame samples the buttons, applies one action and refreshes the display.
func (m *Machine) Frame() error {
	in, err := m.sampler.Sample()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	m.last = m.ctrl.Frame(in)
	m.frames++
	if m.verbose {
		m.logger.Printf("frame %d: %s", m.frames, m.last)
	}
	m.display.Show(m.ctrl.Grid().Cells(), m.frameDur)
	return nil
}

// Run polls the frame gate until ctx ends, a button read fails or the frame
// limit is reached. Between polls it sleeps for interval; zero busy-polls.
func (m *Machine) Run(ctx context.Context, interval time.Duration) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.limit > 0 && m.frames >= m.limit {
			return nil
		}
		if _, err := m.Poll(); err != nil {
			return err
		}
		if interval <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// SystemEntropy draws seeds from the operating system's random source.
type SystemEntropy struct{}

// Seed reads eight random bytes.
func (SystemEntropy) Seed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
