package grid

// OccupancyGrid is a mutable grid owned by a producer. Publish turns the
// current contents into a Message that consumers may keep.
type OccupancyGrid struct {
	Name string
	W, H int

	data       []int8
	dirty      bool
	generation uint64
	last       *Message
	resolution float64
}

// NewOccupancyGrid allocates a grid with every cell set to Unknown.
func NewOccupancyGrid(name string, w, h int) *OccupancyGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &OccupancyGrid{Name: name, W: w, H: h, data: make([]int8, w*h), resolution: 1}
	g.Fill(Unknown)
	return g
}

// SetResolution sets the metres-per-cell value carried by published messages.
func (g *OccupancyGrid) SetResolution(r float64) {
	g.resolution = r
	g.dirty = true
}

// Cells exposes the backing slice. Callers that write to it directly must
// call Touch before the next Publish.
func (g *OccupancyGrid) Cells() []int8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *OccupancyGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *OccupancyGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y).
func (g *OccupancyGrid) At(x, y int) int8 { return g.data[g.Index(x, y)] }

// Set writes v at (x, y) and marks the grid changed if the value differs.
func (g *OccupancyGrid) Set(x, y int, v int8) {
	i := g.Index(x, y)
	if g.data[i] != v {
		g.data[i] = v
		g.dirty = true
	}
}

// Fill sets every cell to v.
func (g *OccupancyGrid) Fill(v int8) {
	for i := range g.data {
		g.data[i] = v
	}
	g.dirty = true
}

// Touch marks the grid changed.
func (g *OccupancyGrid) Touch() { g.dirty = true }

// Generation returns the generation of the most recently published message.
func (g *OccupancyGrid) Generation() uint64 { return g.generation }

// Publish returns a Message for the current contents. When nothing changed
// since the previous call the previous Message is returned again, so
// consumers keyed on identity see an unchanged grid.
func (g *OccupancyGrid) Publish() *Message {
	if g.last != nil && !g.dirty {
		return g.last
	}
	g.generation++
	data := make([]int8, len(g.data))
	copy(data, g.data)
	g.last = &Message{
		Name:       g.Name,
		Info:       Info{Width: g.W, Height: g.H, Resolution: g.resolution},
		Data:       data,
		Generation: g.generation,
	}
	g.dirty = false
	return g.last
}
