// Package render turns grid textures and palettes into pixels, on the CPU
// for exports and through ebiten on the GPU.
package render

import (
	"image"

	"occgrid/internal/palette"
)

// Colorize converts cell values into RGBA pixels in buf by table lookup. A
// nil table clears buf to transparent black.
func Colorize(buf []byte, cells []byte, table *palette.Table) {
	if table == nil {
		clear(buf[:4*len(cells)])
		return
	}
	for i, c := range cells {
		base := i * 4
		src := int(c) * 4
		copy(buf[base:base+4], table[src:src+4])
	}
}

// ExpandLuminance writes each single-channel texel as an opaque gray RGBA
// pixel, for GPU back ends without an alpha-only upload format.
func ExpandLuminance(buf []byte, cells []byte) {
	for i, c := range cells {
		base := i * 4
		buf[base+0] = c
		buf[base+1] = c
		buf[base+2] = c
		buf[base+3] = 255
	}
}

// ColorizeImage returns a new w*h image coloured through table.
func ColorizeImage(cells []byte, w, h int, table *palette.Table) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	Colorize(img.Pix, cells, table)
	return img
}
