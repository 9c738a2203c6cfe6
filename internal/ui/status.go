// Package ui draws the viewer's side panel: cache counters and a legend of
// the active palette.
package ui

import (
	"fmt"

	"occgrid/internal/grid"
	"occgrid/internal/texcache"
)

// Status is the information shown on the panel.
type Status struct {
	Source  string
	Palette string
	Message *grid.Message
	Cache   texcache.Stats
	Paused  bool
}

// Lines formats s for display, one entry per panel row.
func (s Status) Lines() []string {
	lines := []string{
		fmt.Sprintf("source   %s", s.Source),
		fmt.Sprintf("palette  %s", s.Palette),
	}
	if s.Message != nil {
		lines = append(lines,
			fmt.Sprintf("size     %dx%d", s.Message.Info.Width, s.Message.Info.Height),
			fmt.Sprintf("gen      %d", s.Message.Generation),
		)
	}
	lines = append(lines,
		fmt.Sprintf("textures %d", s.Cache.Entries),
		fmt.Sprintf("uploads  %d", s.Cache.Uploads+s.Cache.Allocations),
		fmt.Sprintf("hits     %d", s.Cache.Hits),
		fmt.Sprintf("hit rate %s", hitRate(s.Cache)),
	)
	if s.Paused {
		lines = append(lines, "paused")
	}
	return lines
}

func hitRate(st texcache.Stats) string {
	total := st.Hits + st.Uploads + st.Allocations
	if total == 0 {
		return "--"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(st.Hits)/float64(total))
}
