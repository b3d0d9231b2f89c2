package render

import (
	"math"

	"gridcaster/internal/raycast"
)

// PlaneDistance is the distance from the viewer to a projection plane
// screenW pixels wide that exactly spans fov.
func PlaneDistance(screenW int, fov float64) float64 {
	return (float64(screenW) / 2) / math.Tan(fov/2)
}

// Projection converts ray distances into screen-space wall strips.
type Projection struct {
	ScreenW, ScreenH int
	Tile             float64
	Plane            float64
	// Fisheye scales each distance by the cosine of the ray's offset from
	// the heading so straight walls render straight.
	Fisheye bool
}

// NewProjection builds a projection for a screen and field of view.
func NewProjection(screenW, screenH int, fov, tile float64) Projection {
	return Projection{
		ScreenW: screenW,
		ScreenH: screenH,
		Tile:    tile,
		Plane:   PlaneDistance(screenW, fov),
	}
}

// StripHeight returns (tile / dist) * plane distance. A zero distance
// yields +Inf, which Strips clamps to the screen.
func (p Projection) StripHeight(dist float64) float64 {
	if dist <= 0 {
		return math.Inf(1)
	}
	return p.Tile / dist * p.Plane
}

// Strip is the vertical wall span of one column. Rows are in [Top, Bottom).
type Strip struct {
	Column   int
	Top      int
	Bottom   int
	Distance float64
	Vertical bool
}

// Strips maps rays to vertically centred wall strips. stripW columns of
// screen are covered by each ray.
func (p Projection) Strips(rays []raycast.Ray, heading float64, stripW int) []Strip {
	if stripW <= 0 {
		stripW = 1
	}
	strips := make([]Strip, len(rays))
	mid := float64(p.ScreenH) / 2
	for i, r := range rays {
		dist := r.Distance
		if p.Fisheye {
			dist *= math.Cos(r.Angle - heading)
		}
		h := math.Min(p.StripHeight(dist), float64(p.ScreenH))
		top := int(math.Floor(mid - h/2))
		bottom := int(math.Ceil(mid + h/2))
		strips[i] = Strip{
			Column:   i * stripW,
			Top:      max(top, 0),
			Bottom:   min(bottom, p.ScreenH),
			Distance: dist,
			Vertical: r.Vertical,
		}
	}
	return strips
}
