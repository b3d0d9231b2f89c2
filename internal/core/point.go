package core

import (
	"fmt"
	"math"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Point is a position in world units. The zero value is the world origin.
type Point struct {
	X, Y float64
}

// NewPoint returns a Point after checking that both coordinates are finite.
func NewPoint(x, y float64) (Point, error) {
	p := Point{X: x, Y: y}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// Validate reports ErrInvalidInput when either coordinate is NaN or infinite.
func (p Point) Validate() error {
	if !Finite(p.X) || !Finite(p.Y) {
		return fmt.Errorf("point (%g, %g): %w", p.X, p.Y, ErrInvalidInput)
	}
	return nil
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Finite reports whether v is neither NaN nor ±Inf.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	return math.Hypot(b.X-a.X, b.Y-a.Y), nil
}

// NormalizeAngle maps any finite angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	// math.Mod of a tiny negative value can round back up to a full turn.
	if angle >= TwoPi {
		angle = 0
	}
	return angle
}
