package app

import (
	"flag"
	"fmt"

	"occgrid/internal/palette"
	"occgrid/internal/source"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Source    string
	Palette   string
	Overrides palette.Overrides
	Width     int
	Height    int
	Scale     int
	TPS       int
	Rate      float64
	Seed      int64
	LogLevel  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Source:    "costmap",
		Palette:   "costmap",
		Overrides: palette.Overrides{},
		Width:     160,
		Height:    120,
		Scale:     4,
		TPS:       60,
		Rate:      8,
		Seed:      42,
		LogLevel:  "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "grid source to display")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette: map or costmap")
	fs.Var(c.Overrides, "override", "palette entry override index=#rrggbb[aa] (repeatable)")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "grid messages published per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for source reset")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
}

// Resolve builds the palette and source named by the configuration.
func (c *Config) Resolve() (palette.Table, source.Source, error) {
	table, err := palette.ByName(c.Palette, c.Overrides)
	if err != nil {
		return palette.Table{}, nil, fmt.Errorf("app: %w", err)
	}
	src, err := source.New(c.Source, source.Config{Width: c.Width, Height: c.Height})
	if err != nil {
		return palette.Table{}, nil, fmt.Errorf("app: %w", err)
	}
	src.Reset(c.Seed)
	return table, src, nil
}
