package source

import (
	"math"

	"occgrid/internal/grid"
)

// CostmapParams tunes obstacle inflation.
type CostmapParams struct {
	Obstacles      int
	RadiusMin      float64
	RadiusMax      float64
	InscribedWidth float64
	Decay          float64
	Speed          float64
	UnknownColumns int
}

// DefaultCostmapParams returns the standard inflation settings.
func DefaultCostmapParams() CostmapParams {
	return CostmapParams{
		Obstacles:      6,
		RadiusMin:      2,
		RadiusMax:      5,
		InscribedWidth: 2,
		Decay:          0.35,
		Speed:          0.6,
		UnknownColumns: 4,
	}
}

type obstacle struct {
	x, y   float64
	vx, vy float64
	r      float64
}

// Costmap moves circular obstacles across the grid and inflates them into a
// cost gradient: lethal at the obstacle, inscribed just around it, then an
// exponentially decaying cost. The right-most columns stay unknown.
type Costmap struct {
	g         *grid.OccupancyGrid
	params    CostmapParams
	obstacles []obstacle
}

// NewCostmap returns a Costmap source of w*h cells.
func NewCostmap(w, h int, params CostmapParams) *Costmap {
	g := grid.NewOccupancyGrid("costmap", w, h)
	g.SetResolution(0.05)
	return &Costmap{g: g, params: params}
}

// Name returns the message name.
func (c *Costmap) Name() string { return c.g.Name }

// Size returns the grid dimensions.
func (c *Costmap) Size() Size { return Size{W: c.g.W, H: c.g.H} }

// Reset places obstacles deterministically for seed.
func (c *Costmap) Reset(seed int64) {
	rng := NewRNG(seed)
	p := c.params
	c.obstacles = c.obstacles[:0]
	for i := 0; i < p.Obstacles; i++ {
		angle := rng.Range(0, 2*math.Pi)
		c.obstacles = append(c.obstacles, obstacle{
			x:  rng.Range(0, float64(c.g.W)),
			y:  rng.Range(0, float64(c.g.H)),
			vx: math.Cos(angle) * p.Speed,
			vy: math.Sin(angle) * p.Speed,
			r:  rng.Range(p.RadiusMin, p.RadiusMax),
		})
	}
	c.paint()
}

// Step moves every obstacle, bouncing off the grid edges.
func (c *Costmap) Step() {
	w, h := float64(c.g.W), float64(c.g.H)
	for i := range c.obstacles {
		o := &c.obstacles[i]
		o.x += o.vx
		o.y += o.vy
		if o.x < 0 || o.x >= w {
			o.vx = -o.vx
			o.x = math.Max(0, math.Min(o.x, w-1))
		}
		if o.y < 0 || o.y >= h {
			o.vy = -o.vy
			o.y = math.Max(0, math.Min(o.y, h-1))
		}
	}
	c.paint()
}

// Message returns the latest grid message.
func (c *Costmap) Message() *grid.Message { return c.g.Publish() }

func (c *Costmap) paint() {
	p := c.params
	known := c.g.W - p.UnknownColumns
	for y := 0; y < c.g.H; y++ {
		for x := 0; x < c.g.W; x++ {
			if x >= known {
				c.g.Set(x, y, grid.Unknown)
				continue
			}
			c.g.Set(x, y, c.costAt(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

func (c *Costmap) costAt(x, y float64) int8 {
	best := grid.Free
	for _, o := range c.obstacles {
		d := math.Hypot(x-o.x, y-o.y) - o.r
		v := InflatedCost(d, c.params.InscribedWidth, c.params.Decay)
		if v > best {
			best = v
		}
	}
	return best
}

// InflatedCost maps a distance outside an obstacle edge to a cost value.
// Distances at or inside the edge are lethal, the next inscribedWidth cells
// are inscribed, and beyond that cost decays from 98 toward free space.
func InflatedCost(d, inscribedWidth, decay float64) int8 {
	switch {
	case d <= 0:
		return grid.Lethal
	case d <= inscribedWidth:
		return grid.Inscribed
	}
	v := int8(98 * math.Exp(-decay*(d-inscribedWidth)))
	if v < 1 {
		return grid.Free
	}
	return v
}

func init() {
	Register("costmap", func(cfg Config) Source {
		return NewCostmap(cfg.Width, cfg.Height, DefaultCostmapParams())
	})
}
