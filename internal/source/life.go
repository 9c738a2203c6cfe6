package source

import "occgrid/internal/grid"

// Life runs Conway's Game of Life inside a one cell unknown border. Live
// cells are lethal obstacles and dead cells are free space.
type Life struct {
	g        *grid.OccupancyGrid
	w, h     int
	cur, nxt []uint8
}

// NewLife returns a Life source whose grid, border included, is w*h cells.
func NewLife(w, h int) *Life {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	iw, ih := w-2, h-2
	return &Life{
		g:   grid.NewOccupancyGrid("life", w, h),
		w:   iw,
		h:   ih,
		cur: make([]uint8, iw*ih),
		nxt: make([]uint8, iw*ih),
	}
}

// Name returns the message name.
func (l *Life) Name() string { return l.g.Name }

// Size returns the grid dimensions including the border.
func (l *Life) Size() Size { return Size{W: l.g.W, H: l.g.H} }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := NewRNG(seed)
	for i := range l.cur {
		l.cur[i] = 0
		if rng.IntN(4) == 0 {
			l.cur[i] = 1
		}
	}
	l.sync()
}

// Step advances the board by one generation with toroidal wrapping.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.sync()
}

// Message returns the latest grid message.
func (l *Life) Message() *grid.Message { return l.g.Publish() }

// Set forces the interior cell (x, y) alive or dead.
func (l *Life) Set(x, y int, alive bool) {
	l.cur[y*l.w+x] = 0
	if alive {
		l.cur[y*l.w+x] = 1
	}
	l.sync()
}

func (l *Life) sync() {
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			v := grid.Free
			if l.cur[y*l.w+x] == 1 {
				v = grid.Lethal
			}
			l.g.Set(x+1, y+1, v)
		}
	}
}

func init() {
	Register("life", func(cfg Config) Source {
		return NewLife(cfg.Width, cfg.Height)
	})
}
