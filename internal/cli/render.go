package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/ghostty"
)

// variantValue adapts colour.Variant to a pflag.Value.
type variantValue colour.Variant

var _ pflag.Value = (*variantValue)(nil)

func (v *variantValue) String() string {
	return colour.Variant(*v).String()
}

func (v *variantValue) Set(s string) error {
	parsed, err := colour.ParseVariant(s)
	if err != nil {
		return err
	}
	*v = variantValue(parsed)
	return nil
}

func (v *variantValue) Type() string {
	return "variant"
}

type renderOptions struct {
	variant  variantValue
	extended bool
	generate bool
	noColor  bool
}

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a rendered theme file to stdout",
	}
	cmd.AddCommand(a.renderGhosttyCmd())
	return cmd
}

func (a *app) renderGhosttyCmd() *cobra.Command {
	opts := &renderOptions{variant: variantValue(colour.Dark)}
	cmd := &cobra.Command{
		Use:   "ghostty",
		Short: "Print a Ghostty theme document",
		Long: `Print the Ghostty theme document for one variant.

Examples:
  scalar-themes render ghostty --variant dark --generate
  scalar-themes render ghostty --variant light --extended > scalar-light`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := ghostty.CreateTheme(colour.Variant(opts.variant), ghostty.ThemeOptions{
				IncludeExtendedPalette: opts.extended,
				EnablePaletteGenerate:  opts.generate,
			})
			out := cmd.OutOrStdout()
			if opts.noColor || !isTTY(out) {
				_, err := io.WriteString(out, doc)
				return err
			}
			return highlight(out, doc, "ini")
		},
	}

	cmd.Flags().Var(&opts.variant, "variant", "theme variant (dark, light)")
	cmd.Flags().BoolVar(&opts.extended, "extended", false, "include explicit palette entries 16-255")
	cmd.Flags().BoolVar(&opts.generate, "generate", false, "emit palette-generate = true")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable syntax highlighting")
	return cmd
}

// isTTY reports whether w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// highlight writes code to w with terminal syntax highlighting.
func highlight(w io.Writer, code, language string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("failed to tokenise: %w", err)
	}

	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return fmt.Errorf("failed to format: %w", err)
	}
	_, err = io.WriteString(w, b.String())
	return err
}
