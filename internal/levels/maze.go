package levels

import (
	"strconv"

	"gridcaster/internal/core"
)

// MazeConfig returns the defaults of the "maze" level.
func MazeConfig() Config {
	return Config{
		Tile:         48,
		SpawnX:       1.5,
		SpawnY:       1.5,
		HeadingDeg:   0,
		Speed:        60,
		TurnSpeedDeg: 150,
	}
}

// DefaultMazeShape is a 21x15 maze with a few loops.
func DefaultMazeShape() MazeShape {
	return MazeShape{Cols: 21, Rows: 15, Seed: 1, Braid: 0.1}
}

// MazeShape controls maze generation. Cols and Rows are rounded down to odd
// numbers no smaller than 5.
type MazeShape struct {
	Cols  int
	Rows  int
	Seed  int64
	Braid float64 // chance of opening a dead end into a loop
}

// MazeShapeFromMap overlays the cols, rows, seed and braid keys on base.
func MazeShapeFromMap(base MazeShape, cfg map[string]string) MazeShape {
	s := base
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 5 {
			s.Cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 5 {
			s.Rows = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = parsed
		}
	}
	if v, ok := cfg["braid"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			s.Braid = parsed
		}
	}
	return s
}

// Maze builds a seeded maze with a recursive backtracker. Cell (1, 1) is
// always open.
func Maze(cfg map[string]string) (*core.Level, error) {
	shape := MazeShapeFromMap(DefaultMazeShape(), cfg)
	return build("maze", CarveMaze(shape), FromMap(MazeConfig(), cfg))
}

// CarveMaze returns the wall flags of a maze. The border is solid.
func CarveMaze(s MazeShape) [][]uint8 {
	cols := max(s.Cols-(1-s.Cols%2), 5)
	rows := max(s.Rows-(1-s.Rows%2), 5)
	rows2d := make([][]uint8, rows)
	for r := range rows2d {
		rows2d[r] = make([]uint8, cols)
		for c := range rows2d[r] {
			rows2d[r][c] = 1
		}
	}

	rng := core.NewRNG(s.Seed)
	type cell struct{ c, r int }
	dirs := []cell{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	inside := func(c, r int) bool { return c > 0 && c < cols-1 && r > 0 && r < rows-1 }

	stack := []cell{{1, 1}}
	rows2d[1][1] = 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		advanced := false
		for _, d := range dirs {
			nc, nr := cur.c+d.c, cur.r+d.r
			if !inside(nc, nr) || rows2d[nr][nc] == 0 {
				continue
			}
			rows2d[cur.r+d.r/2][cur.c+d.c/2] = 0
			rows2d[nr][nc] = 0
			stack = append(stack, cell{nc, nr})
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	if s.Braid <= 0 {
		return rows2d
	}
	for r := 1; r < rows-1; r += 2 {
		for c := 1; c < cols-1; c += 2 {
			if !rng.Chance(s.Braid) {
				continue
			}
			// Knock through one interior wall next to this room.
			for _, d := range dirs {
				wc, wr := c+d.c/2, r+d.r/2
				if inside(c+d.c, r+d.r) && rows2d[wr][wc] == 1 {
					rows2d[wr][wc] = 0
					break
				}
			}
		}
	}
	return rows2d
}

func init() {
	core.Register("maze", Maze)
}
