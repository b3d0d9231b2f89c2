// Package term runs the caster inside a terminal using tcell block characters.
package term

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"gridcaster/internal/app"
	"gridcaster/internal/audio"
	"gridcaster/internal/body"
	"gridcaster/internal/core"
	"gridcaster/internal/frame"
	"gridcaster/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Runner owns a tcell screen and drives a Scene from key events.
type Runner struct {
	screen  tcell.Screen
	scene   *app.Scene
	latch   *KeyLatch
	clock   *core.FixedStep
	bump    *audio.Bumper
	logger  *log.Logger
	maxDist float64
	showMap bool
	last    frame.Frame
}

// NewRunner loads cfg.Level sized to screen. screen must already be initialized.
func NewRunner(screen tcell.Screen, cfg *app.Config, bump *audio.Bumper, logger *log.Logger) (*Runner, error) {
	w, h := screen.Size()
	// One ray per character column.
	termCfg := *cfg
	termCfg.Strip = 1
	scene, err := app.NewScene(&termCfg, w, h)
	if err != nil {
		return nil, err
	}
	ww, wh := scene.Level.Grid.Bounds()
	return &Runner{
		screen:  screen,
		scene:   scene,
		latch:   NewKeyLatch(DefaultHold),
		clock:   core.NewFixedStep(cfg.TPS),
		bump:    bump,
		logger:  logger,
		maxDist: math.Hypot(ww, wh) / 2,
		showMap: cfg.Minimap > 0,
	}, nil
}

// Run polls events and renders at the configured tick rate until ctx is
// cancelled or the user quits.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.clock.Step())
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go pollEvents(ctx, r.screen, events)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := r.handle(ev, time.Now())
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case now := <-ticker.C:
			r.tick(now)
		}
	}
}

type eventPoller interface {
	PollEvent() tcell.Event
}

// pollEvents forwards events until the screen is finalized or ctx is done.
func pollEvents(ctx context.Context, s eventPoller, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (r *Runner) handle(ev tcell.Event, now time.Time) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		return false, r.resize()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyLeft:
			r.latch.Turn(body.TurnLeft, now)
		case tcell.KeyRight:
			r.latch.Turn(body.TurnRight, now)
		case tcell.KeyUp:
			r.latch.Move(body.MoveForward, now)
		case tcell.KeyDown:
			r.latch.Move(body.MoveBackward, now)
		case tcell.KeyRune:
			return r.handleRune(ev.Rune(), now), nil
		}
	}
	return false, nil
}

func (r *Runner) handleRune(c rune, now time.Time) (quit bool) {
	switch c {
	case 'q':
		return true
	case 'a':
		r.latch.Turn(body.TurnLeft, now)
	case 'd':
		r.latch.Turn(body.TurnRight, now)
	case 'w':
		r.latch.Move(body.MoveForward, now)
	case 's':
		r.latch.Move(body.MoveBackward, now)
	case ' ':
		r.latch.Release()
	case 'm':
		r.showMap = !r.showMap
	case 'f':
		r.scene.Proj.Fisheye = !r.scene.Proj.Fisheye
	}
	return false
}

// resize rebuilds the view for the new terminal size, keeping the body.
func (r *Runner) resize() error {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	old := r.scene.View
	cfg := old.Config()
	cfg.Columns = w
	view, err := frame.New(old.Grid(), old.Body(), cfg)
	if err != nil {
		return fmt.Errorf("resize to %dx%d: %w", w, h, err)
	}
	fisheye := r.scene.Proj.Fisheye
	r.scene.View = view
	r.scene.Proj = render.NewProjection(w, h, cfg.FOV, old.Grid().TileSize())
	r.scene.Proj.Fisheye = fisheye
	r.scene.StripW = 1
	return nil
}

func (r *Runner) tick(now time.Time) {
	b := r.scene.View.Body()
	turn, move := r.latch.Intents(now)
	b.SetTurn(turn)
	b.SetMove(move)

	f, err := r.scene.View.Tick(r.clock.Delta())
	if err != nil {
		r.logger.Printf("tick: %v", err)
		return
	}
	r.last = f
	if f.Blocked {
		r.bump.Play()
	}
	r.draw()
}

func (r *Runner) draw() {
	w, h := r.screen.Size()
	drawView(r.screen, w, h, r.scene.Strips(r.last), r.maxDist)
	if r.showMap {
		drawMap(r.screen, r.scene.Level.Grid, r.last)
	}
	drawStatus(r.screen, w, r.last)
	r.screen.Show()
}
