// Package colour provides the Scalar palette and the colour maths used to
// derive terminal palettes from it.
package colour

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R, G, B uint8
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// MarshalText encodes the colour as its hex string.
func (rgb RGB) MarshalText() ([]byte, error) {
	return []byte(rgb.Hex()), nil
}

// UnmarshalText decodes a hex string produced by MarshalText.
func (rgb *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*rgb = parsed
	return nil
}

// ParseHex parses a six digit hex colour, with or without a leading '#'.
// Digits are case-insensitive.
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 hex digits", s)
	}
	// colorful's scanner accepts short trailing fields, so reject those here.
	if i := strings.IndexFunc(raw, func(r rune) bool { return !isHexDigit(r) }); i >= 0 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: unexpected character %q", s, raw[i])
	}

	c, err := colorful.Hex("#" + raw)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level colour literals.
func MustParseHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
