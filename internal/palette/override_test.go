package palette

import (
	"errors"
	"flag"
	"image/color"
	"testing"
)

func TestParseOverride(t *testing.T) {
	i, c, err := ParseOverride("255=#102030")
	if err != nil {
		t.Fatal(err)
	}
	if i != 255 || c != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Fatalf("got %d %v", i, c)
	}

	i, c, err = ParseOverride("-1=#10203040")
	if err != nil {
		t.Fatal(err)
	}
	if i != 255 || c.A != 0x40 {
		t.Fatalf("signed index: got %d %v", i, c)
	}

	for _, bad := range []string{"255", "256=#000000", "x=#000000", "0=#0000", "0=#zzzzzz"} {
		if _, _, err := ParseOverride(bad); !errors.Is(err, ErrBadOverride) {
			t.Fatalf("%q: expected ErrBadOverride, got %v", bad, err)
		}
	}
}

func TestOverridesFlag(t *testing.T) {
	o := Overrides{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(o, "override", "")
	if err := fs.Parse([]string{"-override", "0=#00000080", "-override", "255=#ff0000"}); err != nil {
		t.Fatal(err)
	}
	if len(o) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(o))
	}
	if s := o.String(); s != "0=#00000080,255=#ff0000ff" {
		t.Fatalf("String() = %q", s)
	}
}
