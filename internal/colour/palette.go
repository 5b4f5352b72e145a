package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Variant selects the light or dark flavour of the theme.
type Variant int

const (
	// Dark is the dark theme variant.
	Dark Variant = iota
	// Light is the light theme variant.
	Light
)

// Variants returns every variant in output order.
func Variants() []Variant {
	return []Variant{Dark, Light}
}

// String returns the lowercase variant name used in file names and flags.
func (v Variant) String() string {
	switch v {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Title returns the capitalised variant name used in theme display names.
func (v Variant) Title() string {
	switch v {
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	default:
		return v.String()
	}
}

// ParseVariant parses "dark" or "light" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, fmt.Errorf("unknown variant %q (expected dark or light)", s)
	}
}

// Palette holds the semantic colour roles of one theme variant.
type Palette struct {
	Background RGB `json:"background"`
	Surface    RGB `json:"surface"`
	Highlight  RGB `json:"highlight"`
	Foreground RGB `json:"foreground"`
	Secondary  RGB `json:"secondary"`
	Muted      RGB `json:"muted"`
	Green      RGB `json:"green"`
	Red        RGB `json:"red"`
	Yellow     RGB `json:"yellow"`
	Blue       RGB `json:"blue"`
	Orange     RGB `json:"orange"`
	Purple     RGB `json:"purple"`

	// Editor chrome shared by the Zed and Neovim themes.
	IndentGuide       RGB `json:"indentGuide"`
	IndentGuideActive RGB `json:"indentGuideActive"`
}

// Base colour values are sourced from the Scalar default CSS preset
// (https://github.com/scalar/scalar, packages/themes/src/presets/default.css).
// Light yellow is darkened for readability on white.
var palettes = map[Variant]Palette{
	Light: {
		Background:        MustParseHex("#ffffff"),
		Surface:           MustParseHex("#f6f6f6"),
		Highlight:         MustParseHex("#e7e7e7"),
		Foreground:        MustParseHex("#1b1b1b"),
		Secondary:         MustParseHex("#757575"),
		Muted:             MustParseHex("#7d7d7d"),
		Green:             MustParseHex("#078657"),
		Red:               MustParseHex("#ef0006"),
		Yellow:            MustParseHex("#987100"),
		Blue:              MustParseHex("#007ac2"),
		Orange:            MustParseHex("#cc4700"),
		Purple:            MustParseHex("#5203d1"),
		IndentGuide:       MustParseHex("#d7d7d7"),
		IndentGuideActive: MustParseHex("#b8b8b8"),
	},
	Dark: {
		Background:        MustParseHex("#0f0f0f"),
		Surface:           MustParseHex("#1a1a1a"),
		Highlight:         MustParseHex("#272727"),
		Foreground:        MustParseHex("#e7e7e7"),
		Secondary:         MustParseHex("#a4a4a4"),
		Muted:             MustParseHex("#797979"),
		Green:             MustParseHex("#00b648"),
		Red:               MustParseHex("#e53b39"),
		Yellow:            MustParseHex("#ffc90d"),
		Blue:              MustParseHex("#4eb3ec"),
		Orange:            MustParseHex("#ff8d4d"),
		Purple:            MustParseHex("#b191f9"),
		IndentGuide:       MustParseHex("#383838"),
		IndentGuideActive: MustParseHex("#585858"),
	},
}

// Lookup returns the palette for a variant. Unknown variants fall back to
// dark.
func Lookup(v Variant) Palette {
	if p, ok := palettes[v]; ok {
		return p
	}
	return palettes[Dark]
}

// Base16 assembles the ANSI 16-colour palette. Normal and bright slots share
// a hue, so blue, green, yellow and purple each appear more than once.
func (p Palette) Base16() Base16 {
	return Base16{
		p.Surface,
		p.Red,
		p.Green,
		p.Yellow,
		p.Blue,
		p.Purple,
		p.Blue,
		p.Secondary,
		p.Muted,
		p.Orange,
		p.Green,
		p.Yellow,
		p.Blue,
		p.Purple,
		p.Blue,
		p.Foreground,
	}
}

// Extended returns the 256-colour palette derived from Base16.
func (p Palette) Extended() Extended {
	return Generate256(p.Base16(), p.Background, p.Foreground)
}

// NamedColour pairs a role name with its colour.
type NamedColour struct {
	Role   string
	Colour RGB
}

// Roles returns the palette's roles in display order.
func (p Palette) Roles() []NamedColour {
	return []NamedColour{
		{"background", p.Background},
		{"surface", p.Surface},
		{"highlight", p.Highlight},
		{"foreground", p.Foreground},
		{"secondary", p.Secondary},
		{"muted", p.Muted},
		{"green", p.Green},
		{"red", p.Red},
		{"yellow", p.Yellow},
		{"blue", p.Blue},
		{"orange", p.Orange},
		{"purple", p.Purple},
	}
}

// ToJSON encodes both variants as {"light": {...}, "dark": {...}}.
func ToJSON() ([]byte, error) {
	doc := map[string]Palette{
		Light.String(): Lookup(Light),
		Dark.String():  Lookup(Dark),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	return append(data, '\n'), nil
}
