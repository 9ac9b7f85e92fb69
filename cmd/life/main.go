//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifeboard/internal/app"
	"lifeboard/internal/core"
	"lifeboard/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	rng := core.NewTimeRNG()
	if cfg.Seed != 0 {
		rng = core.NewRNG(cfg.Seed)
	}
	loop := life.NewLoop(life.NewBoard(rng), cfg.Interval)
	loop.SetRunning(cfg.Running)

	game := app.New(loop, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifeboard — Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
