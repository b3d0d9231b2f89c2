package app

import (
	"fmt"
	"math"

	"gridcaster/internal/body"
	"gridcaster/internal/core"
	"gridcaster/internal/frame"
	"gridcaster/internal/render"
)

// Scene is a loaded level wired to a view of a given screen size.
type Scene struct {
	Level  *core.Level
	View   *frame.Orchestrator
	Proj   render.Projection
	StripW int
}

// NewScene loads cfg.Level and builds the body, orchestrator and projection
// for a screenW x screenH screen. Zero dimensions fall back to cfg and then
// to the level's world size.
func NewScene(cfg *Config, screenW, screenH int) (*Scene, error) {
	lvl, err := core.LoadLevel(cfg.Level, cfg.Settings)
	if err != nil {
		return nil, err
	}
	worldW, worldH := lvl.Grid.Bounds()
	if screenW <= 0 {
		screenW = cfg.Width
	}
	if screenW <= 0 {
		screenW = int(worldW)
	}
	if screenH <= 0 {
		screenH = cfg.Height
	}
	if screenH <= 0 {
		screenH = int(worldH)
	}
	strip := max(cfg.Strip, 1)
	columns := screenW / strip
	if columns <= 0 {
		return nil, fmt.Errorf("screen width %d narrower than strip %d: %w", screenW, strip, core.ErrInvalidInput)
	}

	b, err := body.FromLevel(lvl)
	if err != nil {
		return nil, err
	}
	fov := cfg.FOV * math.Pi / 180
	view, err := frame.New(lvl.Grid, b, frame.Config{FOV: fov, Columns: columns, Workers: cfg.Workers})
	if err != nil {
		return nil, err
	}
	proj := render.NewProjection(screenW, screenH, fov, lvl.Grid.TileSize())
	proj.Fisheye = cfg.Fisheye
	return &Scene{Level: lvl, View: view, Proj: proj, StripW: strip}, nil
}

// Strips converts a frame into wall strips for this scene's screen.
func (s *Scene) Strips(f frame.Frame) []render.Strip {
	return s.Proj.Strips(f.Rays, f.Pose.Heading, s.StripW)
}

// Parameters snapshots the level, body and view settings.
func (s *Scene) Parameters() core.ParameterSnapshot {
	snap := core.Snapshot(s.View.Body(), s.View)
	snap.Groups = append([]core.ParameterGroup{{
		Name: "level",
		Params: []core.Parameter{
			{Key: "name", Label: "name", Value: s.Level.Name},
			core.BoolParam("fisheye", "fisheye", s.Proj.Fisheye),
		},
	}}, snap.Groups...)
	return snap
}
