// Package levels registers the built-in maps with the core level registry.
package levels

import "gridcaster/internal/core"

var classicMap = [][]uint8{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1},
	{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// ClassicConfig returns the defaults of the "classic" level: 48 unit tiles,
// spawn in the middle of the map facing down.
func ClassicConfig() Config {
	return Config{
		Tile:         48,
		SpawnX:       7.5,
		SpawnY:       5.5,
		HeadingDeg:   90,
		Speed:        40,
		TurnSpeedDeg: 180,
	}
}

// Classic builds the 15x11 "classic" level.
func Classic(cfg map[string]string) (*core.Level, error) {
	return build("classic", classicMap, FromMap(ClassicConfig(), cfg))
}

func init() {
	core.Register("classic", Classic)
}
