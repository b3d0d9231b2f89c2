package core

import (
	"fmt"
	"math"
)

// Grid stores a fixed occupancy map in row-major order. A cell value of 1 is
// a wall and 0 is open floor. Every cell is a square of TileSize world units.
type Grid struct {
	W, H int
	tile float64
	data []uint8
}

// NewGrid builds a Grid from rows of 0/1 flags. All rows must have the same
// length and the tile size must be finite and positive.
func NewGrid(tile float64, rows [][]uint8) (*Grid, error) {
	if !Finite(tile) || tile <= 0 {
		return nil, fmt.Errorf("grid: tile size %g: %w", tile, ErrInvalidInput)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid: empty map: %w", ErrInvalidInput)
	}
	w, h := len(rows[0]), len(rows)
	g := &Grid{W: w, H: h, tile: tile, data: make([]uint8, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d: %w", y, len(row), w, ErrInvalidInput)
		}
		for x, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("grid: cell (%d, %d) = %d: %w", x, y, v, ErrInvalidInput)
			}
			g.data[g.Index(x, y)] = v
		}
	}
	return g, nil
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// TileSize returns the edge length of one cell in world units.
func (g *Grid) TileSize() float64 { return g.tile }

// Bounds returns the world width and height covered by the grid.
func (g *Grid) Bounds() (float64, float64) {
	return float64(g.W) * g.tile, float64(g.H) * g.tile
}

// Index returns the linear slice index for cell (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Cell returns the flag stored at (col, row). ok is false outside the grid.
func (g *Grid) Cell(col, row int) (v uint8, ok bool) {
	if col < 0 || col >= g.W || row < 0 || row >= g.H {
		return 0, false
	}
	return g.data[g.Index(col, row)], true
}

// Cells returns a copy of the row-major occupancy flags.
func (g *Grid) Cells() []uint8 {
	return append([]uint8(nil), g.data...)
}

// IsOccupied reports whether p lies inside a wall. Points outside
// [0, width) x [0, height) are always occupied.
func (g *Grid) IsOccupied(p Point) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, fmt.Errorf("grid: %w", err)
	}
	width, height := g.Bounds()
	if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
		return true, nil
	}
	col := int(math.Floor(p.X / g.tile))
	row := int(math.Floor(p.Y / g.tile))
	// x/tile can round up to W for x just below the world edge.
	col = min(col, g.W-1)
	row = min(row, g.H-1)
	return g.data[g.Index(col, row)] == 1, nil
}
