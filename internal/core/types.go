package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// Level bundles an occupancy grid with the pose and speeds a body spawns
// with.
type Level struct {
	Name      string
	Grid      *Grid
	Spawn     Point
	Heading   float64
	Speed     float64
	TurnSpeed float64
}

// Factory constructs a Level using an optional configuration map.
type Factory func(cfg map[string]string) (*Level, error)

var levels = map[string]Factory{}

// Register adds a level factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	levels[name] = f
}

// Levels exposes the registry of available level factories.
func Levels() map[string]Factory {
	return levels
}

// LevelNames returns the registered level names in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadLevel builds the named level, passing cfg to its factory.
func LoadLevel(name string, cfg map[string]string) (*Level, error) {
	f, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %v): %w", name, LevelNames(), ErrInvalidInput)
	}
	lvl, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return lvl, nil
}
