// Package common provides shared utilities for output plugins.
package common

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jmylchreest/scalar-themes/internal/colour"
)

// TemplateFuncs returns standard template functions for all output plugins.
// These functions provide consistent color access and formatting across all templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Palette access.
		"variants": colour.Variants,
		"palette":  paletteFunc,
		"get":      getRoleFunc,
		"has":      hasRoleFunc,
		"ansi":     ansiFunc,

		// Format conversion.
		"hex":       hexFunc,
		"hexNoHash": hexNoHashFunc,
		"rgb":       rgbFunc,

		// Layout.
		"pad": padFunc,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// paletteFunc returns the palette for a variant.
// Accepts a colour.Variant or its name ("dark", "light").
func paletteFunc(data *colour.ThemeData, variant any) (colour.Palette, error) {
	if data == nil {
		return colour.Palette{}, fmt.Errorf("theme data is nil")
	}

	switch v := variant.(type) {
	case colour.Variant:
		return data.Palette(v), nil
	case string:
		parsed, err := colour.ParseVariant(v)
		if err != nil {
			return colour.Palette{}, err
		}
		return data.Palette(parsed), nil
	default:
		return colour.Palette{}, fmt.Errorf("unsupported variant type %T", variant)
	}
}

// getRoleFunc returns a colour by role name (e.g., "background").
func getRoleFunc(p colour.Palette, role string) (colour.RGB, error) {
	for _, nc := range p.Roles() {
		if nc.Role == role {
			return nc.Colour, nil
		}
	}
	return colour.RGB{}, fmt.Errorf("unknown colour role %q", role)
}

// hasRoleFunc checks if a role name exists in the palette.
func hasRoleFunc(p colour.Palette, role string) bool {
	_, err := getRoleFunc(p, role)
	return err == nil
}

// ansiFunc returns the ANSI colour at index 0-15.
func ansiFunc(p colour.Palette, index int) (colour.RGB, error) {
	base := p.Base16()
	if index < 0 || index >= len(base) {
		return colour.RGB{}, fmt.Errorf("ansi index out of range: %d", index)
	}
	return base[index], nil
}

// hexFunc returns colour as hex string (#RRGGBB).
func hexFunc(c colour.RGB) string {
	return c.Hex()
}

// hexNoHashFunc returns colour as hex string without # prefix (RRGGBB).
func hexNoHashFunc(c colour.RGB) string {
	return strings.TrimPrefix(c.Hex(), "#")
}

// rgbFunc returns colour as rgb(r,g,b) string.
func rgbFunc(c colour.RGB) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// padFunc left-aligns s in a field of the given width.
func padFunc(width int, s string) string {
	return fmt.Sprintf("%-*s", width, s)
}

// trimPrefixFunc wraps strings.TrimPrefix with pipe-friendly argument order.
// Usage in template: {{ .Value | trimPrefix "#" }}.
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// replaceFunc wraps strings.ReplaceAll with pipe-friendly argument order.
// Usage in template: {{ .Value | replace "old" "new" }}.
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
