// Package raycast finds where a ray from the viewer first meets a wall of
// the occupancy grid.
//
// Each cast runs two marches: one across horizontal grid lines (constant y)
// and one across vertical grid lines (constant x). The nearer of the two
// hits wins.
package raycast

import (
	"fmt"
	"math"

	"gridcaster/internal/core"
)

// degenerateEpsilon is the smallest |sin| or |cos| for which a search's
// slope is still usable.
const degenerateEpsilon = 1e-12

// Ray is the resolved cast for one screen column.
type Ray struct {
	Origin     core.Point
	Angle      float64
	FacingDown bool
	FacingLeft bool

	Hit      core.Point
	Distance float64
	// Vertical is set when the hit lies on a vertical grid line.
	Vertical bool
}

// Facing classifies a normalized angle into its quadrant. y grows downward,
// so angles in (0, π) face down.
func Facing(angle float64) (down, left bool) {
	down = angle > 0 && angle < math.Pi
	left = angle > math.Pi/2 && angle < 1.5*math.Pi
	return down, left
}

// Degenerate reports whether angle is parallel to one of the grid axes, so
// that one of the two searches never crosses a grid line.
func Degenerate(angle float64) bool {
	sin, cos := math.Sincos(angle)
	return math.Abs(sin) < degenerateEpsilon || math.Abs(cos) < degenerateEpsilon
}

// CheckAngle returns ErrInvalidInput for a non-finite angle and
// ErrDegenerateGeometry for an axis-aligned one. Cast handles both
// axis-aligned cases itself; this is for callers that need a finite slope.
func CheckAngle(angle float64) error {
	if !core.Finite(angle) {
		return fmt.Errorf("raycast: angle %g: %w", angle, core.ErrInvalidInput)
	}
	if Degenerate(angle) {
		return fmt.Errorf("raycast: angle %g is axis-aligned: %w", angle, core.ErrDegenerateGeometry)
	}
	return nil
}
