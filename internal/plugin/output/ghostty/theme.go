package ghostty

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/scalar-themes/internal/colour"
)

// ThemeOptions controls how the palette section of a theme is written.
// The two options are independent.
type ThemeOptions struct {
	// IncludeExtendedPalette writes explicit entries for indices 16-255.
	IncludeExtendedPalette bool

	// EnablePaletteGenerate asks Ghostty (1.3.0+) to derive indices 16-255
	// from the base 16 itself.
	EnablePaletteGenerate bool
}

// GenerateMode returns the options used when Ghostty can generate the
// extended palette.
func GenerateMode() ThemeOptions {
	return ThemeOptions{EnablePaletteGenerate: true}
}

// ExplicitMode returns the options used for Ghostty versions that need every
// palette entry written out.
func ExplicitMode() ThemeOptions {
	return ThemeOptions{IncludeExtendedPalette: true}
}

// CreateTheme renders a Ghostty theme file for the given variant.
func CreateTheme(variant colour.Variant, opts ThemeOptions) string {
	p := colour.Lookup(variant)

	var b strings.Builder
	fmt.Fprintf(&b, "# Scalar %s - Ghostty Theme\n", variant.Title())
	b.WriteString("# Based on the Scalar default theme palette\n")
	b.WriteString("# https://github.com/scalar/scalar\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "background = %s\n", p.Background.Hex())
	fmt.Fprintf(&b, "foreground = %s\n", p.Foreground.Hex())
	fmt.Fprintf(&b, "cursor-color = %s\n", p.Foreground.Hex())
	fmt.Fprintf(&b, "cursor-text = %s\n", p.Background.Hex())
	fmt.Fprintf(&b, "selection-background = %s\n", p.Highlight.Hex())
	fmt.Fprintf(&b, "selection-foreground = %s\n", p.Foreground.Hex())
	if opts.EnablePaletteGenerate {
		b.WriteString("palette-generate = true\n")
	}

	b.WriteString("\n")
	b.WriteString("# ANSI colors (0-15)\n")
	for i, c := range p.Base16() {
		writePaletteLine(&b, i, c)
	}

	if opts.IncludeExtendedPalette {
		extended := p.Extended()
		b.WriteString("\n")
		b.WriteString("# Extended colors (16-255), generated from ANSI colors in CIELAB\n")
		for i := len(colour.Base16{}); i < len(extended); i++ {
			writePaletteLine(&b, i, extended[i])
		}
	}

	return b.String()
}

func writePaletteLine(b *strings.Builder, index int, c colour.RGB) {
	fmt.Fprintf(b, "palette = %d=%s\n", index, c.Hex())
}
