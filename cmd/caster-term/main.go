package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"gridcaster/internal/app"
	"gridcaster/internal/audio"
	_ "gridcaster/internal/levels"
	"gridcaster/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	sound := flag.Bool("sound", false, "play a thump when walking into a wall")
	logPath := flag.String("log", "", "append log output to this file instead of discarding it")
	flag.Parse()

	// stderr belongs to the terminal UI while it runs.
	logger := log.New(io.Discard, "caster-term: ", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	screen.HideCursor()

	var bump *audio.Bumper
	if *sound {
		bump = audio.NewBumper()
		if err := bump.Initialize(); err != nil {
			logger.Printf("audio disabled: %v", err)
		}
	}

	runner, err := term.NewRunner(screen, cfg, bump, logger)
	if err != nil {
		screen.Fini()
		log.Fatalf("load %q: %v", cfg.Level, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = runner.Run(ctx)
	stop()
	bump.Close()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
