package grid

import (
	"errors"
	"testing"
)

func TestPublishReturnsSameMessageWhenUnchanged(t *testing.T) {
	g := NewOccupancyGrid("map", 4, 3)
	first := g.Publish()
	if first.Info.Width != 4 || first.Info.Height != 3 {
		t.Fatalf("unexpected size %dx%d", first.Info.Width, first.Info.Height)
	}
	if first.Data[0] != Unknown {
		t.Fatalf("new grid should start unknown, got %d", first.Data[0])
	}
	if again := g.Publish(); again != first {
		t.Fatal("unchanged grid published a new message")
	}

	g.Set(1, 1, 50)
	second := g.Publish()
	if second == first {
		t.Fatal("changed grid reused the old message")
	}
	if second.Generation != first.Generation+1 {
		t.Fatalf("generation %d after %d", second.Generation, first.Generation)
	}
	if first.Data[g.Index(1, 1)] != Unknown {
		t.Fatal("publishing mutated an earlier snapshot")
	}
	if second.Data[g.Index(1, 1)] != 50 {
		t.Fatal("snapshot missing new value")
	}
}

func TestSetSameValueKeepsMessage(t *testing.T) {
	g := NewOccupancyGrid("map", 2, 2)
	first := g.Publish()
	g.Set(0, 0, Unknown)
	if g.Publish() != first {
		t.Fatal("writing an identical value invalidated the message")
	}
}

func TestValidate(t *testing.T) {
	m := &Message{Name: "a", Info: Info{Width: 2, Height: 2}, Data: make([]int8, 4)}
	if err := m.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}
	m.Data = m.Data[:3]
	if err := m.Validate(); !errors.Is(err, ErrDataSize) {
		t.Fatalf("expected ErrDataSize, got %v", err)
	}
}
