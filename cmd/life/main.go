//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/taucannonfox/rustlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	p := flaggy.NewParser("life")
	p.Description = "Conway's Game of Life"
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	ctrl, err := cfg.NewController()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("life: %dx%d seed=%d interval=%s manual=%v", cfg.Width, cfg.Height, cfg.Seed, cfg.Interval, cfg.StartManual)

	game := app.New(ctrl, cfg.Scale, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("rustlife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
