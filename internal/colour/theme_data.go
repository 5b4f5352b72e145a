package colour

import "strings"

// ThemeData is the data passed to output plugins and their templates.
type ThemeData struct {
	// Name is the theme family name, e.g. "Scalar".
	Name  string
	Dark  Palette
	Light Palette
}

// NewThemeData builds theme data for the named theme from the built-in
// palettes.
func NewThemeData(name string) *ThemeData {
	return &ThemeData{
		Name:  name,
		Dark:  Lookup(Dark),
		Light: Lookup(Light),
	}
}

// Palette returns the palette for a variant.
func (td *ThemeData) Palette(v Variant) Palette {
	if v == Light {
		return td.Light
	}
	return td.Dark
}

// Slug returns the lowercase theme name for use in file names.
func (td *ThemeData) Slug() string {
	return strings.ToLower(strings.ReplaceAll(td.Name, " ", "-"))
}

// DisplayName returns e.g. "Scalar Dark".
func (td *ThemeData) DisplayName(v Variant) string {
	return td.Name + " " + v.Title()
}
