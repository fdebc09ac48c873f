//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridkit/internal/app"
	_ "gridkit/pkg/sims/briansbrain"
	_ "gridkit/pkg/sims/elementary"
	_ "gridkit/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("gridkit — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
