package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
)

// wcagAA is the minimum contrast for normal text.
const wcagAA = 4.5

type previewOptions struct {
	variant  variantValue
	extended bool
}

func (a *app) previewCmd() *cobra.Command {
	opts := &previewOptions{variant: variantValue(colour.Dark)}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the palette as colour swatches",
		Long: `Show the named palette roles, the 16 base terminal colours and optionally
the full 256-colour palette as swatches, along with the foreground/background
contrast ratio.

Examples:
  scalar-themes preview
  scalar-themes preview --variant light --extended`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writePreview(cmd.OutOrStdout(), colour.Variant(opts.variant), opts.extended)
		},
	}

	cmd.Flags().Var(&opts.variant, "variant", "theme variant (dark, light)")
	cmd.Flags().BoolVar(&opts.extended, "extended", false, "include the 256-colour grid")
	return cmd
}

func writePreview(w io.Writer, v colour.Variant, extended bool) error {
	r := lipgloss.NewRenderer(w)
	p := colour.Lookup(v)
	swatch := func(c colour.RGB, width int) string {
		return r.NewStyle().Background(lipgloss.Color(c.Hex())).Render(strings.Repeat(" ", width))
	}
	title := r.NewStyle().Bold(true)
	faint := r.NewStyle().Faint(true)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title.Render(fmt.Sprintf("%s %s", themeName, v.Title())))

	for _, role := range p.Roles() {
		fmt.Fprintf(&b, "  %-11s %s  %s\n", role.Role, role.Colour.Hex(), swatch(role.Colour, 6))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", title.Render("ANSI 0-15"))
	base := p.Base16()
	for row := range 2 {
		b.WriteString("  ")
		for i := row * 8; i < row*8+8; i++ {
			b.WriteString(swatch(base[i], 4))
		}
		fmt.Fprintf(&b, "  %s\n", faint.Render(fmt.Sprintf("%d-%d", row*8, row*8+7)))
	}

	if extended {
		ext := p.Extended()
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n", title.Render("Extended 16-255"))
		for row := range 6 {
			b.WriteString("  ")
			start := 16 + row*36
			for i := start; i < start+36; i++ {
				b.WriteString(swatch(ext[i], 2))
			}
			b.WriteString("\n")
		}
		b.WriteString("  ")
		for i := 232; i < 256; i++ {
			b.WriteString(swatch(ext[i], 3))
		}
		b.WriteString("\n")
	}

	ratio := colour.ContrastRatio(p.Foreground, p.Background)
	verdict := "passes WCAG AA"
	if ratio < wcagAA {
		verdict = "fails WCAG AA"
	}
	fmt.Fprintf(&b, "\n  Contrast (foreground/background): %.2f:1 (%s)\n", ratio, verdict)

	_, err := io.WriteString(w, b.String())
	return err
}
