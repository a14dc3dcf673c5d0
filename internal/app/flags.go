package app

import (
	"flag"

	"cave-golf/internal/level"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	Level    level.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 10, TPS: 60, HUDWidth: 260, Level: level.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Level.Bind(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per contour unit")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
}
