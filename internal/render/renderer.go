//go:build ebiten

package render

import (
	"fmt"

	"occgrid/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws cached grid textures through a palette.
type GridPainter struct {
	shader   *ebiten.Shader
	uniforms map[string]any
}

// NewGridPainter compiles the grid shader and binds table as its palette.
func NewGridPainter(table *palette.Table) (*GridPainter, error) {
	shader, err := NewGridShader()
	if err != nil {
		return nil, fmt.Errorf("render: grid shader: %w", err)
	}
	gp := &GridPainter{shader: shader, uniforms: map[string]any{}}
	gp.SetPalette(table)
	return gp, nil
}

// SetPalette replaces the bound lookup table.
func (gp *GridPainter) SetPalette(table *palette.Table) {
	gp.uniforms["Palette"] = PaletteUniform(table)
}

// Draw paints tex onto dst, scaled by an integer factor.
func (gp *GridPainter) Draw(dst *ebiten.Image, tex *Texture, scale int) {
	if scale <= 0 {
		scale = 1
	}
	w, h := tex.Size()
	op := &ebiten.DrawRectShaderOptions{Uniforms: gp.uniforms}
	op.Images[0] = tex.Image()
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawRectShader(w, h, gp.shader, op)
}
