//go:build !ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"gridkit/internal/app"
	"gridkit/internal/term"
	_ "gridkit/pkg/sims/briansbrain"
	_ "gridkit/pkg/sims/elementary"
	_ "gridkit/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.TUI {
		if err := app.RunHeadless(os.Stdout, sim, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, screen, sim, cfg.TPS, cfg.Seed)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
