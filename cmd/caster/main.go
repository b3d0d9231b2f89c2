//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"gridcaster/internal/app"
	"gridcaster/internal/audio"
	_ "gridcaster/internal/levels"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable the collision sound")
	flag.Parse()

	logger := log.New(os.Stderr, "caster: ", log.LstdFlags)

	scene, err := app.NewScene(cfg, 0, 0)
	if err != nil {
		log.Fatalf("load %q: %v", cfg.Level, err)
	}

	var bump *audio.Bumper
	if !*mute {
		bump = audio.NewBumper()
		if err := bump.Initialize(); err != nil {
			logger.Printf("audio disabled: %v", err)
		}
		defer bump.Close()
	}

	game := app.New(scene, cfg, bump, logger)

	ebiten.SetWindowTitle("gridcaster - " + scene.Level.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(scene.Proj.ScreenW, scene.Proj.ScreenH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
