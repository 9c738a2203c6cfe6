// Package palette builds the 256-entry RGBA lookup tables used to colour
// occupancy and cost grids. A cell value is read as an unsigned byte and used
// directly as the table index, so the legal "unknown" value -1 lands on 255.
package palette

import (
	"image/color"
	"sync"
)

// Entries is the number of colours in a Table.
const Entries = 256

// Table is a packed RGBA lookup table, four bytes per entry.
type Table [Entries * 4]byte

// Slate is the colour of the legal -1 (unknown) cell value.
var Slate = color.RGBA{R: 0x70, G: 0x89, B: 0x86, A: 255}

var (
	illegalPositive = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	inscribed       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	lethal          = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// RGBA returns the colour stored at index i.
func (t *Table) RGBA(i uint8) color.RGBA {
	base := int(i) * 4
	return color.RGBA{R: t[base], G: t[base+1], B: t[base+2], A: t[base+3]}
}

// Bytes returns a copy of the packed table.
func (t *Table) Bytes() []byte {
	out := make([]byte, len(t))
	copy(out, t[:])
	return out
}

// Colors expands the table into one color.RGBA per entry.
func (t *Table) Colors() []color.RGBA {
	out := make([]color.RGBA, Entries)
	for i := range out {
		out[i] = t.RGBA(uint8(i))
	}
	return out
}

func (t *Table) set(i int, c color.RGBA) {
	base := i * 4
	t[base+0] = c.R
	t[base+1] = c.G
	t[base+2] = c.B
	t[base+3] = c.A
}

// BuildMapPalette returns the grayscale occupancy palette. Free space (0) is
// white and occupied space (100) is black.
func BuildMapPalette() Table {
	var t Table
	for i := 0; i <= 100; i++ {
		v := uint8(255 - (255*i)/100)
		t.set(i, color.RGBA{R: v, G: v, B: v, A: 255})
	}
	fillReserved(&t)
	return t
}

// BuildObstacleGridPalette returns the costmap palette: transparent free
// space, a blue to red cost ramp, cyan inscribed and purple lethal cells.
func BuildObstacleGridPalette() Table {
	var t Table
	t.set(0, color.RGBA{})
	for i := 1; i <= 98; i++ {
		v := uint8((255 * i) / 100)
		t.set(i, color.RGBA{R: v, G: 0, B: 255 - v, A: 255})
	}
	t.set(99, inscribed)
	t.set(100, lethal)
	fillReserved(&t)
	return t
}

// fillReserved paints entries 101..255, which are shared by every palette.
func fillReserved(t *Table) {
	// illegal positive values
	for i := 101; i <= 127; i++ {
		t.set(i, illegalPositive)
	}
	// illegal negative values, red through yellow
	for i := 128; i <= 254; i++ {
		g := uint8((255 * (i - 128)) / (254 - 128))
		t.set(i, color.RGBA{R: 255, G: g, B: 0, A: 255})
	}
	t.set(255, Slate)
}

var (
	mapOnce      sync.Once
	mapTable     Table
	obstacleOnce sync.Once
	obstacleTbl  Table
)

// MapPalette returns the process-wide map palette. The table is built on
// first use and must not be modified.
func MapPalette() *Table {
	mapOnce.Do(func() { mapTable = BuildMapPalette() })
	return &mapTable
}

// ObstacleGridPalette returns the process-wide costmap palette. The table is
// built on first use and must not be modified.
func ObstacleGridPalette() *Table {
	obstacleOnce.Do(func() { obstacleTbl = BuildObstacleGridPalette() })
	return &obstacleTbl
}
