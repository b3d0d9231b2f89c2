package render

import "gridcaster/internal/core"

// DefaultMinimapScale shrinks world units to minimap pixels.
const DefaultMinimapScale = 0.2

// Minimap maps world coordinates onto a scaled-down overlay.
type Minimap struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Point returns the minimap position of a world point.
func (m Minimap) Point(p core.Point) (float32, float32) {
	return float32(m.OffsetX + p.X*m.Scale), float32(m.OffsetY + p.Y*m.Scale)
}

// Length scales a world distance.
func (m Minimap) Length(v float64) float32 {
	return float32(v * m.Scale)
}
