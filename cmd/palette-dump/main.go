package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"occgrid/internal/grid"
	"occgrid/internal/logger"
	"occgrid/internal/palette"
	"occgrid/internal/render"
	"occgrid/internal/source"
)

func main() {
	logger.Init()
	log := logger.WithComponent("palette-dump")

	name := flag.String("palette", "map", "palette: map or costmap")
	overrides := palette.Overrides{}
	flag.Var(overrides, "override", "palette entry override index=#rrggbb[aa] (repeatable)")
	from := flag.Int("from", 0, "first index to print")
	to := flag.Int("to", 255, "last index to print")
	cols := flag.Int("cols", 8, "swatches per row")
	out := flag.String("png", "", "write a colourised grid to this PNG file")
	gridPath := flag.String("grid", "", "JSON grid message to colourise (default: a demo source)")
	src := flag.String("source", "costmap", "demo source used when -grid is empty")
	steps := flag.Int("steps", 0, "steps to advance the demo source before export")
	width := flag.Int("width", 160, "demo source width")
	height := flag.Int("height", 120, "demo source height")
	seed := flag.Int64("seed", 42, "demo source seed")
	flag.Parse()

	table, err := palette.ByName(*name, overrides)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Print(swatches(&table, *from, *to, *cols))
		return
	}

	var msg *grid.Message
	if *gridPath != "" {
		msg, err = readGrid(*gridPath)
	} else {
		msg, err = demoGrid(*src, source.Config{Width: *width, Height: *height}, *seed, *steps)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := writePNG(*out, msg, &table); err != nil {
		log.Fatal(err)
	}
	log.WithField("name", msg.Name).WithField("file", *out).Info("wrote grid image")
}

func readGrid(path string) (*grid.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.DecodeJSON(f)
}

func demoGrid(name string, cfg source.Config, seed int64, steps int) (*grid.Message, error) {
	s, err := source.New(name, cfg)
	if err != nil {
		return nil, err
	}
	s.Reset(seed)
	for i := 0; i < steps; i++ {
		s.Step()
	}
	return s.Message(), nil
}

func writePNG(path string, msg *grid.Message, table *palette.Table) error {
	img := render.ColorizeImage(grid.ToUnsignedBytes(msg.Data), msg.Info.Width, msg.Info.Height, table)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// swatches renders table entries [from, to] as coloured blocks.
func swatches(table *palette.Table, from, to, cols int) string {
	if from < 0 {
		from = 0
	}
	if to > palette.Entries-1 {
		to = palette.Entries - 1
	}
	if cols <= 0 {
		cols = 8
	}
	var b strings.Builder
	n := 0
	for i := from; i <= to; i++ {
		b.WriteString(swatch(table.RGBA(uint8(i)), i))
		n++
		if n%cols == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	if n%cols != 0 {
		b.WriteByte('\n')
	}
	return b.String()
}
