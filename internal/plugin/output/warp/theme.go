package warp

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/scalar-themes/internal/colour"
)

// Hex is a colour written as a double-quoted "#rrggbb" YAML scalar.
type Hex colour.RGB

// MarshalYAML implements yaml.Marshaler.
func (h Hex) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: colour.RGB(h).Hex(),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Hex) UnmarshalYAML(node *yaml.Node) error {
	c, err := colour.ParseHex(node.Value)
	if err != nil {
		return err
	}
	*h = Hex(c)
	return nil
}

// Theme is a Warp custom theme.
type Theme struct {
	Name           string         `yaml:"name"`
	Accent         Hex            `yaml:"accent"`
	Cursor         Hex            `yaml:"cursor"`
	Background     Hex            `yaml:"background"`
	Foreground     Hex            `yaml:"foreground"`
	Details        string         `yaml:"details"`
	TerminalColors TerminalColors `yaml:"terminal_colors"`
}

// TerminalColors holds the normal and bright ANSI colours.
type TerminalColors struct {
	Normal ANSI `yaml:"normal"`
	Bright ANSI `yaml:"bright"`
}

// ANSI is one half of the 16-colour palette.
type ANSI struct {
	Black   Hex `yaml:"black"`
	Red     Hex `yaml:"red"`
	Green   Hex `yaml:"green"`
	Yellow  Hex `yaml:"yellow"`
	Blue    Hex `yaml:"blue"`
	Magenta Hex `yaml:"magenta"`
	Cyan    Hex `yaml:"cyan"`
	White   Hex `yaml:"white"`
}

func newANSI(c []colour.RGB) ANSI {
	return ANSI{
		Black:   Hex(c[0]),
		Red:     Hex(c[1]),
		Green:   Hex(c[2]),
		Yellow:  Hex(c[3]),
		Blue:    Hex(c[4]),
		Magenta: Hex(c[5]),
		Cyan:    Hex(c[6]),
		White:   Hex(c[7]),
	}
}

// details tells Warp how to shade its UI relative to the background.
func details(v colour.Variant) string {
	if v == colour.Light {
		return "lighter"
	}
	return "darker"
}

// NewTheme builds the Warp theme for one variant.
func NewTheme(td *colour.ThemeData, v colour.Variant) Theme {
	p := td.Palette(v)
	base := p.Base16()
	return Theme{
		Name:       td.DisplayName(v),
		Accent:     Hex(p.Blue),
		Cursor:     Hex(p.Foreground),
		Background: Hex(p.Background),
		Foreground: Hex(p.Foreground),
		Details:    details(v),
		TerminalColors: TerminalColors{
			Normal: newANSI(base[:8]),
			Bright: newANSI(base[8:]),
		},
	}
}

// Render encodes the theme as YAML with 2-space indentation.
func Render(td *colour.ThemeData, v colour.Variant) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewTheme(td, v)); err != nil {
		return nil, fmt.Errorf("failed to encode warp theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode warp theme: %w", err)
	}
	return buf.Bytes(), nil
}
