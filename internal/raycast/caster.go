package raycast

import (
	"fmt"
	"math"

	"gridcaster/internal/core"
)

// Grid is the occupancy the caster marches against. *core.Grid implements
// it.
type Grid interface {
	IsOccupied(p core.Point) (bool, error)
	TileSize() float64
}

// Caster resolves rays against a read-only grid. It holds no per-ray state
// and may be shared by concurrent sweeps.
type Caster struct {
	grid  Grid
	nudge float64
}

// New returns a Caster for grid.
func New(grid Grid) (*Caster, error) {
	if grid == nil {
		return nil, fmt.Errorf("raycast: nil grid: %w", core.ErrInvalidInput)
	}
	tile := grid.TileSize()
	if !core.Finite(tile) || tile <= 0 {
		return nil, fmt.Errorf("raycast: tile size %g: %w", tile, core.ErrInvalidInput)
	}
	return &Caster{grid: grid, nudge: tile * 1e-6}, nil
}

// Cast resolves the ray leaving origin at angle. The result carries the
// nearer of the horizontal-line and vertical-line hits; on a tie the
// horizontal hit is kept.
func (c *Caster) Cast(origin core.Point, angle float64) (Ray, error) {
	if err := origin.Validate(); err != nil {
		return Ray{}, fmt.Errorf("raycast: origin: %w", err)
	}
	if !core.Finite(angle) {
		return Ray{}, fmt.Errorf("raycast: angle %g: %w", angle, core.ErrInvalidInput)
	}

	angle = core.NormalizeAngle(angle)
	down, left := Facing(angle)
	r := Ray{Origin: origin, Angle: angle, FacingDown: down, FacingLeft: left}

	hHit, hDist := core.Point{}, math.Inf(1)
	if s, ok := horizontalSearch(angle, down, left); ok {
		var err error
		if hHit, hDist, err = c.march(origin, s); err != nil {
			return Ray{}, fmt.Errorf("raycast: horizontal search at %g: %w", angle, err)
		}
	}
	vHit, vDist := core.Point{}, math.Inf(1)
	if s, ok := verticalSearch(angle, down, left); ok {
		var err error
		if vHit, vDist, err = c.march(origin, s); err != nil {
			return Ray{}, fmt.Errorf("raycast: vertical search at %g: %w", angle, err)
		}
	}

	if hDist > vDist {
		r.Hit, r.Distance, r.Vertical = vHit, vDist, true
	} else {
		r.Hit, r.Distance = hHit, hDist
	}
	return r, nil
}
