// Package grid holds occupancy grid messages as they arrive from a producer
// and the helpers that turn their cell data into GPU-ready bytes.
package grid

import (
	"errors"
	"fmt"
)

// Cell values with a fixed meaning.
const (
	Unknown   int8 = -1
	Free      int8 = 0
	Inscribed int8 = 99
	Lethal    int8 = 100
)

// ErrDataSize reports a message whose data does not cover width*height cells.
var ErrDataSize = errors.New("grid data size mismatch")

// Info describes the grid geometry.
type Info struct {
	Width      int
	Height     int
	Resolution float64
}

// Message is a single published occupancy or cost grid.
//
// Consumers compare messages by identity: the same *Message with the same
// Generation is the same grid. Producers must publish a new Message, or bump
// Generation, whenever Data changes.
type Message struct {
	Name       string
	Info       Info
	Data       []int8
	Generation uint64
}

// Cells returns the number of cells described by Info.
func (m *Message) Cells() int { return m.Info.Width * m.Info.Height }

// Validate checks that Data matches the declared dimensions.
func (m *Message) Validate() error {
	if m.Info.Width < 0 || m.Info.Height < 0 {
		return fmt.Errorf("%w: %q has negative size %dx%d", ErrDataSize, m.Name, m.Info.Width, m.Info.Height)
	}
	if len(m.Data) != m.Cells() {
		return fmt.Errorf("%w: %q has %d cells for %dx%d", ErrDataSize, m.Name, len(m.Data), m.Info.Width, m.Info.Height)
	}
	return nil
}
