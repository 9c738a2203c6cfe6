//go:build !griddebug

package texcache

import "occgrid/internal/grid"

func assertSize(*grid.Message) {}
