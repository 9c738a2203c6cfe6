//go:build griddebug

package texcache

import "occgrid/internal/grid"

// assertSize panics on malformed messages in griddebug builds.
func assertSize(msg *grid.Message) {
	if err := msg.Validate(); err != nil {
		panic(err)
	}
}
