package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/pkg/life"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bitlife.env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("bitlife", nil)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), c)
	assert.Equal(t, life.Bounded, c.EdgePolicy())

	opts := c.Options(nil)
	assert.Equal(t, uint32(5), opts.FrameTicks)
	assert.Equal(t, 20*time.Millisecond, opts.Tick)
}

func TestLoadFlags(t *testing.T) {
	c, err := Load("bitlife", []string{"-edges", "torus", "-seed", "9", "-tick", "10ms", "-frame_ticks", "10"})
	require.NoError(t, err)
	assert.Equal(t, life.Toroidal, c.EdgePolicy())
	assert.Equal(t, uint64(9), c.Seed)

	opts := c.Options(nil)
	assert.Equal(t, life.Toroidal, opts.Edges)
	assert.Equal(t, uint32(10), opts.FrameTicks)
	assert.Equal(t, 10*time.Millisecond, opts.Tick)
}

func TestLoadFileThenFlags(t *testing.T) {
	path := writeConfig(t, "# demo board\nseed=0x10\nedges=toroidal\nverbose=true\nframes=40\npress_a=3,7-9\n")

	c, err := Load("bitlife", []string{"-config", path, "-frames", "12"})
	require.NoError(t, err)
	assert.Equal(t, uint64(16), c.Seed)
	assert.Equal(t, "toroidal", c.Edges)
	assert.True(t, c.Verbose)
	assert.Equal(t, uint64(12), c.Frames, "flags win over the file")
	assert.Equal(t, "3,7-9", c.ScriptA)
}

func TestApplyIgnoresBadValues(t *testing.T) {
	c := NewConfig()
	c.Apply(map[string]string{
		"scale":       "-3",
		"edges":       "klein",
		"tick":        "soon",
		"frame_ticks": "0",
		"unknown":     "1",
	})
	assert.Equal(t, NewConfig(), c)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("bitlife", []string{"-edges", "klein"})
	assert.Error(t, err)

	_, err = Load("bitlife", []string{"-config", filepath.Join(t.TempDir(), "missing.env")})
	assert.Error(t, err)

	_, err = Load("bitlife", []string{"stray"})
	assert.Error(t, err)
}
