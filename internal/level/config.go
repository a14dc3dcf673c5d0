package level

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"cave-golf/internal/cavegen"
	"cave-golf/internal/hazard"
	"cave-golf/internal/mesh"
)

// Config bundles every setting of the level pipeline.
type Config struct {
	Preset string
	Seed   int64

	Grid cavegen.Params

	MinFlatWidth   float64
	FlatEdgeBuffer float64

	Hazards hazard.Params
	// PitCounts lists the maximum pit counts to draw from, one per level.
	// As a parameter it is written as a comma separated list.
	PitCounts []int

	Buffers      []mesh.PlatformBuffer
	GroundHeight float64
	Jitter       float64

	// MaxLevelAttempts bounds regeneration when no start/goal pair fits.
	MaxLevelAttempts int

	// Logger receives progress notes. Nil is silent.
	Logger *log.Logger
}

// DefaultMaxLevelAttempts is used when Config.MaxLevelAttempts is 0.
const DefaultMaxLevelAttempts = 50

// DefaultConfig returns the easy preset.
func DefaultConfig() Config {
	return easy()
}

func base() Config {
	return Config{
		Seed:             42,
		Grid:             cavegen.DefaultParams(),
		MinFlatWidth:     3,
		FlatEdgeBuffer:   1,
		Hazards:          hazard.DefaultParams(),
		PitCounts:        []int{2, 3, 3, 3, 3, 4, 5},
		Buffers:          mesh.DefaultBuffers(),
		GroundHeight:     0.6,
		Jitter:           0.01,
		MaxLevelAttempts: DefaultMaxLevelAttempts,
	}
}

// FromMap builds a config from flag-style key/value pairs. A "preset" key
// picks the starting point; unknown keys and malformed values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if name, ok := cfg["preset"]; ok {
		if p, ok := Presets()[name]; ok {
			c = p()
		}
	}
	for k, v := range cfg {
		if k == "preset" {
			continue
		}
		_ = c.Apply(k, v)
	}
	return c
}

// Apply sets one parameter by key.
func (c *Config) Apply(key, value string) error {
	atoi := func(dst *int, min int) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("level: %s: %w", key, err)
		}
		if n < min {
			return fmt.Errorf("level: %s must be at least %d", key, min)
		}
		*dst = n
		return nil
	}
	atof := func(dst *float64) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("level: %s: %w", key, err)
		}
		if f < 0 {
			return fmt.Errorf("level: %s must not be negative", key)
		}
		*dst = f
		return nil
	}

	switch key {
	case "w":
		return atoi(&c.Grid.Width, 3)
	case "h":
		return atoi(&c.Grid.Height, 3)
	case "seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("level: seed: %w", err)
		}
		c.Seed = n
		return nil
	case "wall_chance":
		return atoi(&c.Grid.WallChance, 0)
	case "min_walls":
		return atoi(&c.Grid.MinSurroundingWalls, 0)
	case "iterations":
		return atoi(&c.Grid.Iterations, 0)
	case "pillar_iterations":
		return atoi(&c.Grid.PillarIterations, 0)
	case "min_open":
		return atof(&c.Grid.MinOpenPercent)
	case "max_attempts":
		return atoi(&c.Grid.MaxAttempts, 0)
	case "noise_bias":
		return atof(&c.Grid.NoiseBias)
	case "noise_scale":
		return atof(&c.Grid.NoiseScale)
	case "min_flat_width":
		return atof(&c.MinFlatWidth)
	case "flat_edge_buffer":
		return atof(&c.FlatEdgeBuffer)
	case "pit_min_area":
		return atof(&c.Hazards.MinArea)
	case "pit_max_area":
		return atof(&c.Hazards.MaxArea)
	case "pits":
		var counts []int
		for _, f := range strings.Split(value, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil || n < 0 {
				return fmt.Errorf("level: pits: bad count %q", f)
			}
			counts = append(counts, n)
		}
		c.PitCounts = counts
		return nil
	case "ball_radius":
		return atof(&c.Hazards.BallRadius)
	case "ground_height":
		return atof(&c.GroundHeight)
	case "jitter":
		return atof(&c.Jitter)
	case "max_level_attempts":
		return atoi(&c.MaxLevelAttempts, 0)
	}
	return fmt.Errorf("level: unknown parameter %q", key)
}

type overrides struct{ c *Config }

func (o overrides) String() string { return "" }

func (o overrides) Set(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", kv)
	}
	return o.c.Apply(strings.TrimSpace(key), strings.TrimSpace(value))
}

type presetFlag struct{ c *Config }

func (p presetFlag) String() string {
	if p.c == nil {
		return ""
	}
	return p.c.Preset
}

func (p presetFlag) Set(name string) error {
	cfg, ok := ConfigFor(name)
	if !ok {
		return fmt.Errorf("unknown preset %q (have %s)", name, strings.Join(PresetNames(), ", "))
	}
	cfg.Logger = p.c.Logger
	*p.c = cfg
	return nil
}

// Bind attaches the most common settings to fs, plus a repeatable
// -set key=value flag for everything else. Flags apply in command line
// order, so -preset should come first.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(presetFlag{c}, "preset", "named starting configuration")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for level generation")
	fs.IntVar(&c.Grid.Width, "w", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "h", c.Grid.Height, "grid height in cells")
	fs.Var(overrides{c}, "set", "parameter override in key=value form (repeatable)")
}

func (c Config) levelAttempts() int {
	if c.MaxLevelAttempts <= 0 {
		return DefaultMaxLevelAttempts
	}
	return c.MaxLevelAttempts
}
