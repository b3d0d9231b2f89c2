package levels

import (
	"errors"
	"math"
	"testing"

	"gridcaster/internal/core"
)

func TestClassicDefaults(t *testing.T) {
	lvl, err := core.LoadLevel("classic", nil)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	size := lvl.Grid.Size()
	if size.W != 15 || size.H != 11 {
		t.Fatalf("size = %+v, want 15x11", size)
	}
	w, h := lvl.Grid.Bounds()
	if w != 720 || h != 528 {
		t.Fatalf("bounds = %gx%g, want 720x528", w, h)
	}
	if lvl.Spawn.X != w/2 || lvl.Spawn.Y != h/2 {
		t.Fatalf("spawn = %v, want the centre of the world", lvl.Spawn)
	}
	if math.Abs(lvl.Heading-math.Pi/2) > 1e-12 || math.Abs(lvl.TurnSpeed-math.Pi) > 1e-12 {
		t.Fatalf("heading %g turn speed %g", lvl.Heading, lvl.TurnSpeed)
	}
	if lvl.Speed != 40 {
		t.Fatalf("speed = %g, want 40", lvl.Speed)
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"classic", "arena", "maze"} {
		if _, ok := core.Levels()[name]; !ok {
			t.Fatalf("level %q not registered", name)
		}
		lvl, err := core.LoadLevel(name, nil)
		if err != nil {
			t.Fatalf("LoadLevel(%q): %v", name, err)
		}
		if occ, _ := lvl.Grid.IsOccupied(lvl.Spawn); occ {
			t.Fatalf("level %q spawns inside a wall", name)
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(ClassicConfig(), map[string]string{
		"tile":       "32",
		"spawn_x":    "1.5",
		"spawn_y":    "bogus",
		"heading":    "-90",
		"speed":      "-3",
		"turn_speed": "45",
	})
	if c.Tile != 32 || c.SpawnX != 1.5 || c.HeadingDeg != -90 || c.TurnSpeedDeg != 45 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.SpawnY != 5.5 || c.Speed != 40 {
		t.Fatalf("invalid values must keep defaults: %+v", c)
	}
	if got := FromMap(ClassicConfig(), nil); got != ClassicConfig() {
		t.Fatalf("nil map changed config: %+v", got)
	}
}

func TestSpawnInsideWallRejected(t *testing.T) {
	_, err := Classic(map[string]string{"spawn_x": "0.5", "spawn_y": "0.5"})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestMazeIsConnected(t *testing.T) {
	shape := DefaultMazeShape()
	for _, braid := range []float64{0, 0.5} {
		shape.Braid = braid
		shape.Seed = 9
		rows := CarveMaze(shape)
		if len(rows) != 15 || len(rows[0]) != 21 {
			t.Fatalf("maze is %dx%d, want 21x15", len(rows[0]), len(rows))
		}
		for c := range rows[0] {
			if rows[0][c] != 1 || rows[len(rows)-1][c] != 1 {
				t.Fatalf("border open at column %d", c)
			}
		}
		// Every odd room is reachable from (1, 1).
		seen := map[[2]int]bool{{1, 1}: true}
		queue := [][2]int{{1, 1}}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				n := [2]int{p[0] + d[0], p[1] + d[1]}
				if rows[n[1]][n[0]] == 0 && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		for r := 1; r < len(rows)-1; r += 2 {
			for c := 1; c < len(rows[0])-1; c += 2 {
				if !seen[[2]int{c, r}] {
					t.Fatalf("braid %g: room (%d,%d) unreachable", braid, c, r)
				}
			}
		}
	}
}

func TestMazeSeedAndShape(t *testing.T) {
	a, err := Maze(map[string]string{"seed": "3", "cols": "12", "rows": "9"})
	if err != nil {
		t.Fatalf("Maze: %v", err)
	}
	if size := a.Grid.Size(); size.W != 11 || size.H != 9 {
		t.Fatalf("size = %+v, want 11x9", size)
	}
	b, _ := Maze(map[string]string{"seed": "3", "cols": "12", "rows": "9"})
	ac, bc := a.Grid.Cells(), b.Grid.Cells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatal("same seed produced different mazes")
		}
	}
	if _, ok := core.Levels()["maze"]; !ok {
		t.Fatal("maze not registered")
	}
}
