package palette

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseOverride parses "index=#rrggbb" or "index=#rrggbbaa". The index is a
// decimal table position (0-255) or a signed cell value (-128..-1). Colours
// without an alpha component are opaque.
func ParseOverride(s string) (uint8, color.RGBA, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, color.RGBA{}, fmt.Errorf("%w: %q is not index=colour", ErrBadOverride, s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || n < -128 || n > 255 {
		return 0, color.RGBA{}, fmt.Errorf("%w: index %q out of range", ErrBadOverride, key)
	}
	c, err := ParseColor(value)
	if err != nil {
		return 0, color.RGBA{}, err
	}
	return uint8(n), c, nil
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex colour.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q must have 6 or 8 hex digits", ErrBadOverride, s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q: %v", ErrBadOverride, s, err)
	}
	c := color.RGBA{R: raw[0], G: raw[1], B: raw[2], A: 255}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}

// String implements flag.Value.
func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for _, i := range o.indices() {
		c := o[i]
		parts = append(parts, fmt.Sprintf("%d=#%02x%02x%02x%02x", i, c.R, c.G, c.B, c.A))
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value. Later settings for the same index win.
func (o Overrides) Set(s string) error {
	i, c, err := ParseOverride(s)
	if err != nil {
		return err
	}
	o[i] = c
	return nil
}
