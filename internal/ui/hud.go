//go:build ebiten

package ui

import (
	"image/color"

	"occgrid/internal/palette"
	"occgrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 12
	lineSpacing    = 16
	legendHeight   = 12
)

// HUD renders the status panel to the right of the grid view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     Status

	legend    *ebiten.Image
	legendBuf []byte
}

// NewHUD constructs a HUD of the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update records the status to show on the next Draw.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// SetPalette rebuilds the legend strip from table.
func (h *HUD) SetPalette(table *palette.Table) {
	if h == nil {
		return
	}
	if h.legend == nil {
		h.legend = ebiten.NewImage(palette.Entries, 1)
		h.legendBuf = make([]byte, palette.Entries*4)
	}
	idx := make([]byte, palette.Entries)
	for i := range idx {
		idx[i] = byte(i)
	}
	render.Colorize(h.legendBuf, idx, table)
	premultiply(h.legendBuf)
	h.legend.WritePixels(h.legendBuf)
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.status.Lines() {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineSpacing
	}

	if h.legend != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(h.width-2*panelPadding)/palette.Entries, legendHeight)
		op.GeoM.Translate(panelPadding, float64(y))
		h.panel.DrawImage(h.legend, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// premultiply converts straight RGBA, as stored in palette tables, into the
// premultiplied form ebiten expects.
func premultiply(buf []byte) {
	for i := 0; i+3 < len(buf); i += 4 {
		a := uint32(buf[i+3])
		buf[i+0] = uint8(uint32(buf[i+0]) * a / 255)
		buf[i+1] = uint8(uint32(buf[i+1]) * a / 255)
		buf[i+2] = uint8(uint32(buf[i+2]) * a / 255)
	}
}
