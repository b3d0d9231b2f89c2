package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"gridcaster/internal/core"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Level   string
	Width   int
	Height  int
	FOV     float64
	Strip   int
	Minimap float64
	TPS     int
	Workers int
	Fisheye bool
	// Settings are forwarded to the level factory.
	Settings map[string]string
}

// NewConfig returns a Config populated with sensible defaults. A zero Width
// or Height means "size of the level".
func NewConfig() *Config {
	return &Config{
		Level:    "classic",
		FOV:      60,
		Strip:    1,
		Minimap:  0.2,
		TPS:      60,
		Workers:  1,
		Settings: map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	if c.Settings == nil {
		c.Settings = map[string]string{}
	}
	fs.StringVar(&c.Level, "level", c.Level, fmt.Sprintf("level to load (%s)", strings.Join(core.LevelNames(), ", ")))
	fs.IntVar(&c.Width, "width", c.Width, "screen width in pixels (0 = level width)")
	fs.IntVar(&c.Height, "height", c.Height, "screen height in pixels (0 = level height)")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "field of view in degrees")
	fs.IntVar(&c.Strip, "strip", c.Strip, "screen columns covered by one ray")
	fs.Float64Var(&c.Minimap, "minimap", c.Minimap, "minimap scale factor (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines casting columns in parallel")
	fs.BoolVar(&c.Fisheye, "fisheye", c.Fisheye, "correct fisheye distortion")
	fs.Var(settingsFlag(c.Settings), "set", "level setting as key=value (repeatable)")
}

type settingsFlag map[string]string

func (s settingsFlag) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + s[k]
	}
	return strings.Join(parts, ",")
}

func (s settingsFlag) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("want key=value, got %q", v)
	}
	s[key] = value
	return nil
}
