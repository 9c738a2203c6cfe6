// Package texcache keeps one GPU texture per named grid source and only
// uploads cell data when the source publishes a new message.
package texcache

// Format names the texel layout of a texture upload.
type Format int

const (
	// FormatAlpha is a single 8-bit channel per texel.
	FormatAlpha Format = iota
)

func (f Format) String() string {
	switch f {
	case FormatAlpha:
		return "alpha"
	}
	return "unknown"
}

// TextureSpec describes a texture allocation or re-upload.
type TextureSpec struct {
	Format Format
	Mipmap bool
	Width  int
	Height int
	Data   []byte
}

// Texture is an opaque GPU texture handle.
type Texture interface {
	Size() (w, h int)
	Dispose()
}

// Device allocates and updates textures on a GPU context.
type Device interface {
	// NewTexture allocates a texture and uploads spec.Data.
	NewTexture(spec TextureSpec) Texture
	// UpdateTexture re-uploads spec.Data into tex, resizing if needed. It
	// returns the handle to use from now on, which may differ from tex; the
	// device releases tex in that case.
	UpdateTexture(tex Texture, spec TextureSpec) Texture
}
