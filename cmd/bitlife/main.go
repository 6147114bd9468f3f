//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"bitlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tebeka/atexit"
)

func main() {
	cfg, err := app.Load(os.Args[0], os.Args[1:])
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	logger := log.New(os.Stderr, "bitlife: ", log.LstdFlags)
	game, err := app.New(cfg, logger)
	if err != nil {
		atexit.Fatalf("%v", err)
	}
	m := game.Machine()
	atexit.Register(func() {
		logger.Printf("stopped after %d frames (seed %#x)", m.Frames(), m.Seed())
	})

	ebiten.SetWindowTitle("bitlife — " + cfg.EdgePolicy().String())
	ebiten.SetTPS(cfg.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		atexit.Fatal(err)
	}
	atexit.Exit(0)
}
