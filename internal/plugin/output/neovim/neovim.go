// Package neovim provides an output plugin for Neovim colour schemes.
package neovim

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/paths"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/scalar-themes/internal/plugin/output/template"
)

//go:embed *.tmpl
var templates embed.FS

// GetEmbeddedTemplates returns the embedded template filesystem.
// This is used by the template management commands.
func GetEmbeddedTemplates() embed.FS {
	return templates
}

// GetEmbeddedFS implements output.TemplateProvider.
func (p *Plugin) GetEmbeddedFS() fs.FS {
	return templates
}

// templateData is passed to both templates.
type templateData struct {
	Theme      *colour.ThemeData
	ColorsName string
}

// Plugin implements the output.Plugin interface for Neovim.
type Plugin struct {
	outputDir string
	themeName string
	resolver  paths.Resolver
	logger    hclog.Logger
	lookPath  func(string) (string, error)
}

// New creates a new Neovim output plugin with default settings.
func New() *Plugin {
	return &Plugin{
		themeName: "scalar",
		resolver:  paths.Default(),
		logger:    hclog.NewNullLogger(),
		lookPath:  exec.LookPath,
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "neovim"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "editor (LazyVim compatible)"
}

// Label returns the application's display name.
func (p *Plugin) Label() string {
	return "Neovim"
}

// ProcessNames returns the executable names Neovim runs as.
func (p *Plugin) ProcessNames() []string {
	return []string{"nvim"}
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "neovim.output-dir", "", "Output directory (default: ~/.config/nvim)")
	cmd.Flags().StringVar(&p.themeName, "neovim.theme-name", "scalar", "Theme name for the colorscheme and lualine theme")
}

// SetLogger sets the logger for diagnostic output.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = logger
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.themeName == "" {
		return fmt.Errorf("theme name cannot be empty")
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}
	return p.resolver.NeovimDir()
}

// Generate creates the colorscheme and the lualine theme.
// Returns map of filename -> content.
func (p *Plugin) Generate(themeData *colour.ThemeData) (map[string][]byte, error) {
	if themeData == nil {
		return nil, fmt.Errorf("theme data cannot be nil")
	}

	data := templateData{Theme: themeData, ColorsName: p.themeName}
	outputs := []struct {
		template string
		path     string
	}{
		{"scalar.lua.tmpl", "colors/" + p.themeName + ".lua"},
		{"lualine.lua.tmpl", "lua/lualine/themes/" + p.themeName + ".lua"},
	}

	files := make(map[string][]byte, len(outputs))
	for _, o := range outputs {
		content, err := p.render(o.template, data)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", o.path, err)
		}
		files[o.path] = content
	}

	return files, nil
}

// render executes one template, preferring a user override.
func (p *Plugin) render(name string, data templateData) ([]byte, error) {
	loader := tmplloader.New(p.Name(), templates).
		WithCustomBase(p.resolver.TemplateDir()).
		WithVerbose(true, common.NewVerboseLogger(p.logger))

	tmplContent, fromCustom, err := loader.Load(name)
	if err != nil {
		return nil, err
	}
	if fromCustom {
		p.logger.Info("using custom template", "template", name, "path", loader.CustomPath(name))
	}

	tmpl, err := template.New(name).Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// PreExecute checks that Neovim is installed before generating the theme.
// Implements the output.PreExecuteHook interface.
func (p *Plugin) PreExecute(_ context.Context) (skip bool, reason string, err error) {
	if _, err := p.lookPath("nvim"); err != nil {
		configDir := p.DefaultOutputDir()
		if _, statErr := os.Stat(configDir); statErr != nil {
			return true, fmt.Sprintf("Neovim not found: nvim is not on $PATH and %s does not exist", configDir), nil
		}
	}
	return false, "", nil
}

// Notes explains how to enable the colorscheme.
func (p *Plugin) Notes() []string {
	return []string{
		fmt.Sprintf("Enable with :colorscheme %s (LazyVim: opts.colorscheme = %q)", p.themeName, p.themeName),
	}
}
