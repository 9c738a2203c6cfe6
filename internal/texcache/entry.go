package texcache

import "occgrid/internal/grid"

// entry owns the texture for one message name.
type entry struct {
	dev        Device
	tex        Texture
	msg        *grid.Message
	generation uint64
}

func newEntry(dev Device, msg *grid.Message) *entry {
	return &entry{
		dev:        dev,
		tex:        dev.NewTexture(specFor(msg)),
		msg:        msg,
		generation: msg.Generation,
	}
}

// texture returns the handle for msg and reports whether data was uploaded.
// A message is unchanged only when it is the same pointer carrying the same
// generation; contents are never compared.
func (e *entry) texture(msg *grid.Message) (Texture, bool) {
	if e.msg == msg && e.generation == msg.Generation {
		return e.tex, false
	}
	e.msg = msg
	e.generation = msg.Generation
	e.tex = e.dev.UpdateTexture(e.tex, specFor(msg))
	return e.tex, true
}

func specFor(msg *grid.Message) TextureSpec {
	return TextureSpec{
		Format: FormatAlpha,
		Mipmap: false,
		Width:  msg.Info.Width,
		Height: msg.Info.Height,
		Data:   grid.ToUnsignedBytes(msg.Data),
	}
}
