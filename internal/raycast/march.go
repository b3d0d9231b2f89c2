package raycast

import (
	"math"

	"gridcaster/internal/core"
)

type axis int

const (
	axisX axis = iota
	axisY
)

// search describes one grid-line march. The primary coordinate moves one
// whole tile per step; the secondary coordinate follows the ray.
type search struct {
	primary axis
	// forward is set when the primary coordinate increases along the ray.
	forward bool
	// sign of the secondary step, taken from the facing flags.
	sign float64
	// slope is the secondary change per unit of primary change.
	slope float64
}

// horizontalSearch crosses lines of constant y. ok is false when the ray
// runs parallel to them.
func horizontalSearch(angle float64, down, left bool) (s search, ok bool) {
	sin, cos := math.Sincos(angle)
	if math.Abs(sin) < degenerateEpsilon {
		return search{}, false
	}
	return search{primary: axisY, forward: down, sign: signOf(!left), slope: cos / sin}, true
}

// verticalSearch crosses lines of constant x. ok is false when the ray runs
// parallel to them.
func verticalSearch(angle float64, down, left bool) (s search, ok bool) {
	sin, cos := math.Sincos(angle)
	if math.Abs(cos) < degenerateEpsilon {
		return search{}, false
	}
	return search{primary: axisX, forward: !left, sign: signOf(down), slope: sin / cos}, true
}

func signOf(positive bool) float64 {
	if positive {
		return 1
	}
	return -1
}

// march walks grid lines from origin until the cell on the far side of a
// line is occupied. Points that leave the world are occupied too, so the
// walk ends after at most one step per tile of world extent.
func (c *Caster) march(origin core.Point, s search) (core.Point, float64, error) {
	tile := c.grid.TileSize()
	o := [2]float64{origin.X, origin.Y}
	p, q := int(s.primary), 1-int(s.primary)

	var first, step [2]float64
	first[p] = math.Floor(o[p]/tile) * tile
	step[p] = -tile
	nudge := -c.nudge
	if s.forward {
		first[p] += tile
		step[p] = tile
		nudge = c.nudge
	}
	first[q] = o[q] + (first[p]-o[p])*s.slope
	step[q] = math.Abs(tile*s.slope) * s.sign

	var cur [2]float64
	for i := 0; ; i++ {
		cur[p] = first[p] + float64(i)*step[p]
		cur[q] = first[q] + float64(i)*step[q]

		// Test the cell being entered, not the one being left. At a corner
		// that is the diagonal cell, so both coordinates move along the ray.
		probe := cur
		probe[p] += nudge
		probe[q] += s.sign * c.nudge
		occupied, err := c.grid.IsOccupied(core.Point{X: probe[0], Y: probe[1]})
		if err != nil {
			return core.Point{}, 0, err
		}
		if occupied {
			break
		}
	}

	hit := core.Point{X: cur[0], Y: cur[1]}
	dist, err := core.Distance(origin, hit)
	if err != nil {
		return core.Point{}, 0, err
	}
	return hit, dist, nil
}
