//go:build ebiten

package app

import (
	"log"

	"gridcaster/internal/audio"
	"gridcaster/internal/body"
	"gridcaster/internal/core"
	"gridcaster/internal/frame"
	"gridcaster/internal/render"
	"gridcaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Scene to the ebiten.Game interface.
type Game struct {
	scene   *Scene
	painter *ui.FramePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	bump    *audio.Bumper
	clock   *core.FixedStep
	logger  *log.Logger

	frame  frame.Frame
	strips []render.Strip
}

// New constructs a Game for the provided scene. bump may be nil.
func New(scene *Scene, cfg *Config, bump *audio.Bumper, logger *log.Logger) *Game {
	return &Game{
		scene:   scene,
		painter: ui.NewFramePainter(scene.Proj.ScreenW, scene.Proj.ScreenH, render.DefaultPalette()),
		overlay: ui.NewOverlay(scene.Level.Grid, cfg.Minimap),
		hud:     ui.NewHUD(scene),
		bump:    bump,
		clock:   core.NewFixedStep(cfg.TPS),
		logger:  logger,
	}
}

// Update reads the keyboard, advances the body and sweeps the view.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.scene.Proj.Fisheye = !g.scene.Proj.Fisheye
	}

	b := g.scene.View.Body()
	b.SetTurn(readTurn())
	b.SetMove(readMove())

	f, err := g.scene.View.Tick(g.clock.Step().Seconds())
	if err != nil {
		// Keep the previous frame on screen.
		g.logger.Printf("tick: %v", err)
		return nil
	}
	g.frame = f
	g.strips = g.scene.Strips(f)
	if f.Blocked {
		g.bump.Play()
	}
	g.overlay.Update()
	g.hud.Update(f)
	return nil
}

func readTurn() body.TurnIntent {
	t := body.TurnNone
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		t += body.TurnLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		t += body.TurnRight
	}
	return t
}

func readMove() body.MoveIntent {
	m := body.MoveNone
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		m += body.MoveForward
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		m += body.MoveBackward
	}
	return m
}

// Draw renders the projected walls, the minimap and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame.Rays == nil {
		return
	}
	g.painter.Blit(screen, g.strips, g.scene.StripW)
	g.overlay.Draw(screen, g.frame)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Proj.ScreenW, g.scene.Proj.ScreenH
}
