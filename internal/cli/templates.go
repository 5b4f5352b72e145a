package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/paths"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/common"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/template"
)

type templateOptions struct {
	plugins  []string
	force    bool
	location string
}

func (a *app) templatesCmd() *cobra.Command {
	opts := &templateOptions{}
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output plugin templates",
		Long: `Manage the embedded templates that template-based tools render from.

Templates can be customised by dumping them to
~/.config/scalar-themes/templates/{tool}/ and editing them. Custom templates
are used instead of the embedded ones.

Examples:
  scalar-themes templates list
  scalar-themes templates dump -o neovim
  scalar-themes templates dump -o neovim --force`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long: `List the templates of every template-based tool.

Templates with a custom override are marked with an asterisk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTemplatesList(cmd.OutOrStdout(), opts)
		},
	}
	list.Flags().StringSliceVarP(&opts.plugins, "output-plugins", "o", nil, "comma-separated list of tools (default: all)")

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Dump embedded templates to files",
		Long: `Extract embedded templates to ~/.config/scalar-themes/templates/{tool}/
so they can be customised.

Use -l/--location to dump somewhere else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTemplatesDump(cmd.OutOrStdout(), opts)
		},
	}
	dump.Flags().StringSliceVarP(&opts.plugins, "output-plugins", "o", nil, "comma-separated list of tools (default: all)")
	dump.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing custom templates")
	dump.Flags().StringVarP(&opts.location, "location", "l", "", "custom location to dump templates (default: ~/.config/scalar-themes/templates)")

	cmd.AddCommand(list, dump)
	return cmd
}

// templatePlugins returns the selected plugins that render from templates.
func (a *app) templatePlugins(names []string) ([]output.Plugin, error) {
	candidates := a.registry.All()
	if len(names) > 0 {
		candidates = candidates[:0:0]
		for _, name := range names {
			p, ok := a.registry.Get(name)
			if !ok {
				return nil, fmt.Errorf("plugin %q not found", name)
			}
			candidates = append(candidates, p)
		}
	}

	var plugins []output.Plugin
	for _, p := range candidates {
		if _, ok := p.(output.TemplateProvider); ok {
			plugins = append(plugins, p)
		}
	}
	return plugins, nil
}

// templateLoader returns a loader for a template-based plugin. An empty
// customBase selects the default override directory.
func (a *app) templateLoader(p output.Plugin, customBase string) *template.Loader {
	provider := p.(output.TemplateProvider)
	if customBase == "" {
		customBase = paths.Default().TemplateDir()
	}
	return template.New(p.Name(), provider.GetEmbeddedFS()).
		WithCustomBase(customBase).
		WithVerbose(a.verbose, common.NewVerboseLogger(a.logger))
}

func (a *app) runTemplatesList(w io.Writer, opts *templateOptions) error {
	plugins, err := a.templatePlugins(opts.plugins)
	if err != nil {
		return err
	}
	if len(plugins) == 0 {
		fmt.Fprintln(w, "No template-based plugins found")
		return nil
	}

	fmt.Fprintln(w, "Available plugin templates:")
	fmt.Fprintln(w)

	hasCustom := false
	for _, p := range plugins {
		loader := a.templateLoader(p, "")
		templates, err := loader.ListEmbeddedTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates for %s: %w", p.Name(), err)
		}

		fmt.Fprintf(w, "Plugin: %s\n", p.Name())
		fmt.Fprintf(w, "  Custom template directory: %s\n", loader.CustomDir())
		fmt.Fprintln(w, "  Templates:")
		for _, tmpl := range templates {
			marker := ""
			if loader.GetInfo(tmpl).CustomExists {
				marker = "*"
				hasCustom = true
			}
			fmt.Fprintf(w, "    - %s%s\n", tmpl, marker)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "To customise a template, use: scalar-themes templates dump -o <tool>")
	if hasCustom {
		fmt.Fprintln(w, "Templates with active overrides are shown with an asterisk (*).")
	}
	return nil
}

func (a *app) runTemplatesDump(w io.Writer, opts *templateOptions) error {
	plugins, err := a.templatePlugins(opts.plugins)
	if err != nil {
		return err
	}
	if len(plugins) == 0 {
		return fmt.Errorf("no template-based plugins found")
	}

	customBase, err := expandHome(opts.location)
	if err != nil {
		return err
	}

	total := 0
	for _, p := range plugins {
		loader := a.templateLoader(p, customBase)
		fmt.Fprintf(w, "Dumping templates for %s...\n", p.Name())

		dumped, err := loader.DumpAllTemplates(opts.force)
		for _, path := range dumped {
			fmt.Fprintf(w, "  %s\n", path)
			total++
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, template.ErrTemplateExists) {
			return fmt.Errorf("failed to dump templates for %s: %w", p.Name(), err)
		}
		for line := range strings.SplitSeq(err.Error(), "\n") {
			fmt.Fprintf(w, "  skipped: %s\n", line)
		}
	}

	fmt.Fprintln(w)
	if total == 0 {
		fmt.Fprintln(w, "No templates were dumped. Use --force to overwrite existing templates.")
		return nil
	}
	fmt.Fprintf(w, "Dumped %d template(s). They will be used instead of the embedded versions.\n", total)
	return nil
}

// expandHome expands a leading "~/" to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
