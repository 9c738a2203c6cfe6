package render

import (
	"testing"

	"occgrid/internal/palette"
)

func TestPaletteUniformPremultiplied(t *testing.T) {
	u := PaletteUniform(palette.ObstacleGridPalette())
	if len(u) != 1024 {
		t.Fatalf("uniform length %d", len(u))
	}
	for i := 0; i < 4; i++ {
		if u[i] != 0 {
			t.Fatalf("free space component %d = %v, expected 0", i, u[i])
		}
	}
	// lethal purple
	if u[400] != 1 || u[401] != 0 || u[402] != 1 || u[403] != 1 {
		t.Fatalf("lethal entry %v", u[400:404])
	}
}
