package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/integrii/flaggy"

	"github.com/taucannonfox/rustlife/internal/app"
	"github.com/taucannonfox/rustlife/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 60, 30
	cfg.TPS = 30
	p := flaggy.NewParser("lifeterm")
	p.Description = "Conway's Game of Life in the terminal"
	cfg.BindSimulation(p)
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	ctrl, err := cfg.NewController()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.NewConsole(ctrl, cfg.TPS).Run(ctx); err != nil {
		log.Fatal(err)
	}
	grid := ctrl.Grid()
	log.Printf("lifeterm: seed=%d stopped at generation %d with %d live cells", cfg.Seed, grid.Generation(), grid.Population())
}
