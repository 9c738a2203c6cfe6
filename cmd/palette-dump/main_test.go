package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"occgrid/internal/palette"
	"occgrid/internal/source"
)

func TestSwatchesLayout(t *testing.T) {
	out := swatches(palette.MapPalette(), 0, 9, 4)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d: %q", len(lines), out)
	}
	if !strings.Contains(out, "#ffffffff") {
		t.Fatalf("missing hex values: %q", out)
	}
}

func TestSwatchTransparent(t *testing.T) {
	if s := swatch(color.RGBA{}, 0); !strings.Contains(s, "····") || !strings.Contains(s, "#00000000") {
		t.Fatalf("transparent swatch %q", s)
	}
}

func TestWritePNGFromDemoSource(t *testing.T) {
	msg, err := demoGrid("costmap", source.Config{Width: 16, Height: 8}, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "grid.png")
	if err := writePNG(path, msg, palette.ObstacleGridPalette()); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("image bounds %v", b)
	}
}

func TestReadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	data := `{"name":"g","info":{"width":1,"height":2},"data":[-1,100]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	msg, err := readGrid(path)
	if err != nil {
		t.Fatal(err)
	}
	if msg.Data[0] != -1 || msg.Data[1] != 100 {
		t.Fatalf("data %v", msg.Data)
	}
}
