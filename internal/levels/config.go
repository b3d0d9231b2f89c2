package levels

import (
	"fmt"
	"math"
	"strconv"

	"gridcaster/internal/core"
)

// Config holds the tunables shared by every level. Spawn coordinates are in
// cells so they survive a tile size change; angles are in degrees.
type Config struct {
	Tile         float64
	SpawnX       float64
	SpawnY       float64
	HeadingDeg   float64
	Speed        float64
	TurnSpeedDeg float64
}

// FromMap overlays flag-style key/value pairs on base. Unparseable or out of
// range values keep the base value.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && core.Finite(parsed) {
			c.Tile = parsed
		}
	}
	if v, ok := cfg["spawn_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && core.Finite(parsed) {
			c.SpawnX = parsed
		}
	}
	if v, ok := cfg["spawn_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && core.Finite(parsed) {
			c.SpawnY = parsed
		}
	}
	if v, ok := cfg["heading"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && core.Finite(parsed) {
			c.HeadingDeg = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && core.Finite(parsed) {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["turn_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && core.Finite(parsed) {
			c.TurnSpeedDeg = parsed
		}
	}
	return c
}

// build turns a map literal and a config into a Level. The spawn cell must
// be open floor.
func build(name string, rows [][]uint8, c Config) (*core.Level, error) {
	grid, err := core.NewGrid(c.Tile, rows)
	if err != nil {
		return nil, err
	}
	spawn, err := core.NewPoint(c.SpawnX*c.Tile, c.SpawnY*c.Tile)
	if err != nil {
		return nil, err
	}
	blocked, err := grid.IsOccupied(spawn)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("spawn (%g, %g) is inside a wall: %w", c.SpawnX, c.SpawnY, core.ErrInvalidInput)
	}
	return &core.Level{
		Name:      name,
		Grid:      grid,
		Spawn:     spawn,
		Heading:   c.HeadingDeg * math.Pi / 180,
		Speed:     c.Speed,
		TurnSpeed: c.TurnSpeedDeg * math.Pi / 180,
	}, nil
}
