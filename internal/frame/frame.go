// Package frame turns the viewer's pose into one ray per screen column.
package frame

import (
	"fmt"
	"math"

	"gridcaster/internal/body"
	"gridcaster/internal/core"
	"gridcaster/internal/raycast"

	"golang.org/x/sync/errgroup"
)

// Config controls the ray fan.
type Config struct {
	// FOV is the total angular spread in radians.
	FOV float64
	// Columns is the number of rays per frame, one per screen column.
	Columns int
	// Workers splits a sweep into that many contiguous column ranges cast
	// concurrently. Values below 2 sweep on the calling goroutine.
	Workers int
}

// DefaultConfig returns a 60 degree fan over 720 columns.
func DefaultConfig() Config {
	return Config{FOV: 60 * math.Pi / 180, Columns: 720, Workers: 1}
}

// Orchestrator owns the grid and body of one view and produces a fresh set
// of rays every tick.
type Orchestrator struct {
	grid   *core.Grid
	body   *body.Body
	caster *raycast.Caster
	cfg    Config
}

// New binds a grid and a body. The body must have been spawned on grid.
func New(grid *core.Grid, b *body.Body, cfg Config) (*Orchestrator, error) {
	if grid == nil || b == nil {
		return nil, fmt.Errorf("frame: nil grid or body: %w", core.ErrInvalidInput)
	}
	if !core.Finite(cfg.FOV) || cfg.FOV <= 0 || cfg.FOV >= math.Pi {
		return nil, fmt.Errorf("frame: fov %g outside (0, π): %w", cfg.FOV, core.ErrInvalidInput)
	}
	if cfg.Columns <= 0 {
		return nil, fmt.Errorf("frame: %d columns: %w", cfg.Columns, core.ErrInvalidInput)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	c, err := raycast.New(grid)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	return &Orchestrator{grid: grid, body: b, caster: c, cfg: cfg}, nil
}

// Grid returns the grid the view is cast against.
func (o *Orchestrator) Grid() *core.Grid { return o.grid }

// Body returns the viewer the orchestrator advances each tick.
func (o *Orchestrator) Body() *body.Body { return o.body }

// Config returns the fan settings.
func (o *Orchestrator) Config() Config { return o.cfg }

// Angles returns the un-normalized ray angle of every column for heading:
// heading - FOV/2 + i*FOV/Columns.
func (o *Orchestrator) Angles(heading float64) []float64 {
	start := heading - o.cfg.FOV/2
	delta := o.cfg.FOV / float64(o.cfg.Columns)
	angles := make([]float64, o.cfg.Columns)
	for i := range angles {
		angles[i] = start + float64(i)*delta
	}
	return angles
}

// Sweep casts one ray per column from b's current pose, in column order.
// Every call returns a new slice; on error no rays are returned.
func (o *Orchestrator) Sweep(b *body.Body) ([]raycast.Ray, error) {
	if b == nil {
		return nil, fmt.Errorf("frame: nil body: %w", core.ErrInvalidInput)
	}
	pose := b.Snapshot()
	angles := o.Angles(pose.Heading)
	rays := make([]raycast.Ray, len(angles))

	castRange := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			r, err := o.caster.Cast(pose.Position, angles[i])
			if err != nil {
				return fmt.Errorf("frame: column %d: %w", i, err)
			}
			rays[i] = r
		}
		return nil
	}

	workers := min(o.cfg.Workers, len(rays))
	if workers <= 1 {
		if err := castRange(0, len(rays)); err != nil {
			return nil, err
		}
		return rays, nil
	}

	var g errgroup.Group
	chunk := (len(rays) + workers - 1) / workers
	for lo := 0; lo < len(rays); lo += chunk {
		hi := min(lo+chunk, len(rays))
		g.Go(func() error { return castRange(lo, hi) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rays, nil
}

// Frame is the outcome of one tick.
type Frame struct {
	Pose body.Pose
	Rays []raycast.Ray
	// Blocked is set when the body's destination this tick was a wall.
	Blocked bool
}

// Tick advances the owned body by dt seconds and sweeps the new pose. On
// error the zero Frame is returned and nothing should be drawn.
func (o *Orchestrator) Tick(dt float64) (Frame, error) {
	if _, err := o.body.Advance(dt); err != nil {
		return Frame{}, fmt.Errorf("frame: %w", err)
	}
	rays, err := o.Sweep(o.body)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Pose:    o.body.Snapshot(),
		Rays:    rays,
		Blocked: o.body.Blocked(),
	}, nil
}

// Parameters describes the fan for the HUD.
func (o *Orchestrator) Parameters() core.ParameterGroup {
	return core.ParameterGroup{
		Name: "view",
		Params: []core.Parameter{
			core.FloatParam("fov", "fov", o.cfg.FOV*180/math.Pi),
			core.IntParam("columns", "columns", o.cfg.Columns),
			core.IntParam("workers", "workers", o.cfg.Workers),
			core.FloatParam("tile", "tile", o.grid.TileSize()),
		},
	}
}
