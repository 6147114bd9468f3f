package app

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"bitlife/internal/core"
	"bitlife/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale      int
	TPS        int
	Seed       uint64
	Edges      string
	Tick       time.Duration
	FrameTicks uint
	Verbose    bool

	// Headless only.
	Frames  uint64
	ScriptA string
	ScriptB string

	File string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:      48,
		TPS:        60,
		Edges:      life.Bounded.String(),
		Tick:       core.DefaultTick,
		FrameTicks: core.DefaultFrameTicks,
	}
}

// Bind attaches the configuration to the provided FlagSet. Flag names match
// the keys accepted by Apply.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "LED size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "render ticks per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 draws from the entropy source)")
	fs.StringVar(&c.Edges, "edges", c.Edges, "neighbour policy at the border: bounded or toroidal")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "frame clock resolution")
	fs.UintVar(&c.FrameTicks, "frame_ticks", c.FrameTicks, "clock ticks per frame")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log every frame")
	fs.Uint64Var(&c.Frames, "frames", c.Frames, "stop after this many frames (0 runs forever)")
	fs.StringVar(&c.ScriptA, "press_a", c.ScriptA, "frames on which button A is held, e.g. 3,10-14")
	fs.StringVar(&c.ScriptB, "press_b", c.ScriptB, "frames on which button B is held")
	fs.StringVar(&c.File, "config", c.File, "key=value file read before flags are applied")
}

// Apply overrides fields from a string map. Unknown keys and unparsable
// values are ignored.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 0, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["edges"]; ok {
		if _, err := life.ParseEdges(v); err == nil {
			c.Edges = v
		}
	}
	if v, ok := cfg["tick"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Tick = parsed
		}
	}
	if v, ok := cfg["frame_ticks"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.FrameTicks = uint(parsed)
		}
	}
	if v, ok := cfg["verbose"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Verbose = parsed
		}
	}
	if v, ok := cfg["frames"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Frames = parsed
		}
	}
	if v, ok := cfg["press_a"]; ok {
		c.ScriptA = v
	}
	if v, ok := cfg["press_b"]; ok {
		c.ScriptB = v
	}
}

// Load parses args, then fills any field not set on the command line from
// the -config file.
func Load(name string, args []string) (*Config, error) {
	c := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unknown arguments: %v", fs.Args())
	}
	if c.File == "" {
		return c, c.validate()
	}

	values, err := godotenv.Read(c.File)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", c.File, err)
	}
	fs.Visit(func(f *flag.Flag) { delete(values, f.Name) })
	c.Apply(values)
	return c, c.validate()
}

func (c *Config) validate() error {
	if _, err := life.ParseEdges(c.Edges); err != nil {
		return err
	}
	if c.FrameTicks == 0 || c.FrameTicks > 1<<31 {
		return fmt.Errorf("frame_ticks out of range: %d", c.FrameTicks)
	}
	return nil
}

// EdgePolicy returns the parsed edge policy. Load has already validated it.
func (c *Config) EdgePolicy() life.Edges {
	e, _ := life.ParseEdges(c.Edges)
	return e
}
