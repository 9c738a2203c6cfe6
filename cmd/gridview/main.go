//go:build ebiten

package main

import (
	"errors"
	"flag"

	"occgrid/internal/app"
	"occgrid/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger.Init()
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	logger.SetLevel(cfg.LogLevel)

	game, err := app.New(cfg)
	if err != nil {
		logger.Log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("gridview — " + cfg.Source)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal(err)
	}
}
