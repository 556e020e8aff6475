//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"panel-sim/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := app.LoadScene(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(app.NewSimulator(cfg), scene)

	ebiten.SetWindowTitle("Akira Console Simulator")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(scene.Size.W, scene.Size.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
