// Package source provides demo grid producers for the viewer and the CLI.
package source

import (
	"errors"
	"fmt"
	"sort"

	"occgrid/internal/grid"
)

// ErrUnknownSource is returned by New for unregistered names.
var ErrUnknownSource = errors.New("unknown source")

// Size describes the dimensions of a produced grid.
type Size struct {
	W int
	H int
}

// Config carries the settings shared by every source.
type Config struct {
	Width  int
	Height int
}

// Source produces a stream of grid messages under one name.
type Source interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Message returns the latest grid. It returns the same *grid.Message
	// until the grid content changes.
	Message() *grid.Message
}

// Factory constructs a Source.
type Factory func(cfg Config) Source

var sources = map[string]Factory{}

// Register adds a source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Names returns the registered source names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the named source.
func New(name string, cfg Config) (Source, error) {
	f, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	if cfg.Width <= 0 {
		cfg.Width = 128
	}
	if cfg.Height <= 0 {
		cfg.Height = 128
	}
	return f(cfg), nil
}
