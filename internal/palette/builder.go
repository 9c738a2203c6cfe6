package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"
)

var (
	// ErrUnknownPalette is returned by ByName for names it does not know.
	ErrUnknownPalette = errors.New("unknown palette")
	// ErrBadOverride is returned when an override cannot be parsed.
	ErrBadOverride = errors.New("bad palette override")
)

// Overrides patches individual table entries after the base ramp is built.
type Overrides map[uint8]color.RGBA

// Builder applies entry overrides on top of a base table.
type Builder struct {
	t Table
}

// NewBuilder starts from a copy of base.
func NewBuilder(base Table) *Builder {
	return &Builder{t: base}
}

// SetEntry replaces the colour at index.
func (b *Builder) SetEntry(index uint8, c color.RGBA) *Builder {
	b.t.set(int(index), c)
	return b
}

// Apply sets every entry in o, in ascending index order.
func (b *Builder) Apply(o Overrides) *Builder {
	for _, idx := range o.indices() {
		b.SetEntry(idx, o[idx])
	}
	return b
}

// Build returns the finished table. The builder may keep being used.
func (b *Builder) Build() Table {
	return b.t
}

// NewMapPalette builds the map palette with o applied.
func NewMapPalette(o Overrides) Table {
	return NewBuilder(*MapPalette()).Apply(o).Build()
}

// NewObstacleGridPalette builds the costmap palette with o applied.
func NewObstacleGridPalette(o Overrides) Table {
	return NewBuilder(*ObstacleGridPalette()).Apply(o).Build()
}

// ByName resolves a palette name and applies o to it.
func ByName(name string, o Overrides) (Table, error) {
	switch strings.ToLower(name) {
	case "map":
		return NewMapPalette(o), nil
	case "costmap", "obstacle":
		return NewObstacleGridPalette(o), nil
	}
	return Table{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

func (o Overrides) indices() []uint8 {
	idx := make([]uint8, 0, len(o))
	for i := range o {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool { return idx[a] < idx[b] })
	return idx
}
