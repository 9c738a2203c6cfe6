package texcache

import (
	"slices"
	"testing"

	"occgrid/internal/grid"
)

type fakeTexture struct {
	id       int
	w, h     int
	data     []byte
	disposed bool
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Dispose() { t.disposed = true }

// fakeDevice records every allocation and upload. Like a real GPU context it
// keeps the handle when dimensions match and replaces it otherwise.
type fakeDevice struct {
	nextID  int
	allocs  int
	uploads int
	specs   []TextureSpec
	all     []*fakeTexture
}

func (d *fakeDevice) alloc(spec TextureSpec) *fakeTexture {
	d.nextID++
	t := &fakeTexture{id: d.nextID, w: spec.Width, h: spec.Height, data: slices.Clone(spec.Data)}
	d.all = append(d.all, t)
	return t
}

func (d *fakeDevice) NewTexture(spec TextureSpec) Texture {
	d.allocs++
	d.specs = append(d.specs, spec)
	return d.alloc(spec)
}

func (d *fakeDevice) UpdateTexture(tex Texture, spec TextureSpec) Texture {
	d.uploads++
	d.specs = append(d.specs, spec)
	ft := tex.(*fakeTexture)
	if ft.w == spec.Width && ft.h == spec.Height {
		ft.data = slices.Clone(spec.Data)
		return ft
	}
	ft.Dispose()
	return d.alloc(spec)
}

func message(name string, w, h int, fill int8) *grid.Message {
	data := make([]int8, w*h)
	for i := range data {
		data[i] = fill
	}
	return &grid.Message{Name: name, Info: grid.Info{Width: w, Height: h}, Data: data}
}

func TestGetAllocatesOnFirstSight(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	tex := c.Get(message("map", 3, 2, -1))

	if dev.allocs != 1 || dev.uploads != 0 {
		t.Fatalf("allocs=%d uploads=%d, expected 1/0", dev.allocs, dev.uploads)
	}
	spec := dev.specs[0]
	if spec.Format != FormatAlpha || spec.Mipmap {
		t.Fatalf("unexpected format %v mipmap %v", spec.Format, spec.Mipmap)
	}
	if w, h := tex.Size(); w != 3 || h != 2 {
		t.Fatalf("texture size %dx%d", w, h)
	}
	ft := tex.(*fakeTexture)
	for i, b := range ft.data {
		if b != 255 {
			t.Fatalf("texel %d = %d, expected 255 for unknown", i, b)
		}
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d", c.Len())
	}
}

func TestGetSameMessageSkipsUpload(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	msg := message("map", 4, 4, 0)

	first := c.Get(msg)
	second := c.Get(msg)
	if first != second {
		t.Fatal("same message returned a different texture")
	}
	if dev.uploads != 0 || dev.allocs != 1 {
		t.Fatalf("allocs=%d uploads=%d, expected 1/0", dev.allocs, dev.uploads)
	}
	if s := c.Stats(); s.Hits != 1 || s.Uploads != 0 {
		t.Fatalf("stats %+v", s)
	}
}

func TestGetNewMessageUploadsOnce(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	c.Get(message("map", 4, 4, 0))

	next := message("map", 8, 2, 100)
	tex := c.Get(next)
	if dev.uploads != 1 {
		t.Fatalf("uploads=%d, expected 1", dev.uploads)
	}
	if w, h := tex.Size(); w != 8 || h != 2 {
		t.Fatalf("texture size %dx%d, expected 8x2", w, h)
	}
	if ft := tex.(*fakeTexture); ft.data[0] != 100 {
		t.Fatalf("texel = %d, expected 100", ft.data[0])
	}

	c.Get(next)
	if dev.uploads != 1 {
		t.Fatalf("repeat get uploaded again: uploads=%d", dev.uploads)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", c.Len())
	}
}

func TestGetIgnoresEqualContent(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	c.Get(message("map", 2, 2, 7))
	c.Get(message("map", 2, 2, 7))
	if dev.uploads != 1 {
		t.Fatalf("distinct message with equal data must re-upload, uploads=%d", dev.uploads)
	}
}

func TestGetGenerationBumpInvalidates(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	msg := message("map", 2, 2, 0)
	c.Get(msg)

	msg.Data[0] = 100
	msg.Generation++
	tex := c.Get(msg)
	if dev.uploads != 1 {
		t.Fatalf("uploads=%d, expected 1 after generation bump", dev.uploads)
	}
	if tex.(*fakeTexture).data[0] != 100 {
		t.Fatal("upload missing new data")
	}
}

func TestGetNamesAreIndependent(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	a := message("map", 2, 2, 0)
	b := message("costmap", 3, 3, 50)

	ta := c.Get(a)
	tb := c.Get(b)
	if ta == tb {
		t.Fatal("different names share a texture")
	}
	c.Get(message("costmap", 3, 3, 60))
	if got := c.Get(a); got != ta {
		t.Fatal("update of one name invalidated another")
	}
	if dev.allocs != 2 || dev.uploads != 1 {
		t.Fatalf("allocs=%d uploads=%d, expected 2/1", dev.allocs, dev.uploads)
	}
	if s := c.Stats(); s.Entries != 2 || s.Allocations != 2 || s.Uploads != 1 || s.Hits != 1 {
		t.Fatalf("stats %+v", s)
	}
}

func TestGetWithProducer(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	g := grid.NewOccupancyGrid("map", 5, 5)

	for i := 0; i < 3; i++ {
		c.Get(g.Publish())
	}
	g.Set(2, 2, grid.Lethal)
	for i := 0; i < 3; i++ {
		c.Get(g.Publish())
	}
	if dev.allocs != 1 || dev.uploads != 1 {
		t.Fatalf("allocs=%d uploads=%d, expected 1/1", dev.allocs, dev.uploads)
	}
}

func TestDispose(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	c.Get(message("a", 1, 1, 0))
	c.Get(message("b", 1, 1, 0))
	c.Dispose()

	if c.Len() != 0 {
		t.Fatalf("Len() = %d after Dispose", c.Len())
	}
	for _, tex := range dev.all {
		if !tex.disposed {
			t.Fatalf("texture %d not disposed", tex.id)
		}
	}
}
