//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cave-golf/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "log generation progress")
	flag.Parse()
	if *verbose {
		cfg.Level.Logger = log.Default()
	}

	session, err := app.NewSession(cfg.Level)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	game := app.New(session, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cave-golf: " + session.Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
