package render

import "occgrid/internal/palette"

// PaletteUniform flattens table into 256 premultiplied vec4 values, the
// layout expected by the grid shader's Palette uniform.
func PaletteUniform(table *palette.Table) []float32 {
	out := make([]float32, palette.Entries*4)
	for i := 0; i < palette.Entries; i++ {
		c := table.RGBA(uint8(i))
		a := float32(c.A) / 255
		out[i*4+0] = float32(c.R) / 255 * a
		out[i*4+1] = float32(c.G) / 255 * a
		out[i*4+2] = float32(c.B) / 255 * a
		out[i*4+3] = a
	}
	return out
}
