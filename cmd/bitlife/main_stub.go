//go:build !ebiten

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"bitlife/internal/app"

	"github.com/tebeka/atexit"
)

// The headless build prints frames to stdout. The emulator window needs the
// ebiten build tag: `go run -tags ebiten ./cmd/bitlife`.
func main() {
	cfg, err := app.Load(os.Args[0], os.Args[1:])
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	logger := log.New(os.Stderr, "bitlife: ", log.LstdFlags)
	m, err := app.NewHeadless(cfg, os.Stdout, logger)
	if err != nil {
		atexit.Fatalf("%v", err)
	}
	atexit.Register(func() {
		logger.Printf("stopped after %d frames (seed %#x)", m.Frames(), m.Seed())
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.RunHeadless(ctx, m); err != nil && !errors.Is(err, context.Canceled) {
		atexit.Fatal(err)
	}
	atexit.Exit(0)
}
