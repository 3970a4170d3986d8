//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"seatca/internal/app"
	"seatca/internal/core"
	_ "seatca/internal/sims/seats"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Layout == "" {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("seatca - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
