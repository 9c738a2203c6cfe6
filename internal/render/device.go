//go:build ebiten

package render

import (
	"occgrid/internal/texcache"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a grid texture held in an ebiten image. Each texel stores the
// raw cell byte in every colour channel.
type Texture struct {
	img  *ebiten.Image
	w, h int
}

// Image returns the backing image.
func (t *Texture) Image() *ebiten.Image { return t.img }

// Size returns the texture dimensions in cells.
func (t *Texture) Size() (int, int) { return t.w, t.h }

// Dispose releases the GPU image.
func (t *Texture) Dispose() { t.img.Dispose() }

// Device implements texcache.Device on top of ebiten. ebiten has no
// single-channel image format so uploads are expanded to RGBA.
type Device struct {
	buf []byte
}

// NewDevice returns a Device ready for use on the ebiten update goroutine.
func NewDevice() *Device { return &Device{} }

// NewTexture allocates an image of spec's size and uploads spec.Data.
func (d *Device) NewTexture(spec texcache.TextureSpec) texcache.Texture {
	t := &Texture{img: ebiten.NewImage(spec.Width, spec.Height), w: spec.Width, h: spec.Height}
	d.write(t, spec)
	return t
}

// UpdateTexture uploads into tex when the size is unchanged. Otherwise tex
// is disposed and a new texture is returned.
func (d *Device) UpdateTexture(tex texcache.Texture, spec texcache.TextureSpec) texcache.Texture {
	t := tex.(*Texture)
	if t.w != spec.Width || t.h != spec.Height {
		t.Dispose()
		return d.NewTexture(spec)
	}
	d.write(t, spec)
	return t
}

func (d *Device) write(t *Texture, spec texcache.TextureSpec) {
	n := 4 * spec.Width * spec.Height
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	}
	d.buf = d.buf[:n]
	ExpandLuminance(d.buf, spec.Data)
	t.img.WritePixels(d.buf)
}
