package levels

import "gridcaster/internal/core"

var arenaMap = [][]uint8{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// ArenaConfig returns the defaults of the "arena" level.
func ArenaConfig() Config {
	return Config{
		Tile:         64,
		SpawnX:       1.5,
		SpawnY:       1.5,
		HeadingDeg:   45,
		Speed:        120,
		TurnSpeedDeg: 120,
	}
}

// Arena builds a 12x12 open room with pillars.
func Arena(cfg map[string]string) (*core.Level, error) {
	return build("arena", arenaMap, FromMap(ArenaConfig(), cfg))
}

func init() {
	core.Register("arena", Arena)
}
