// Package warp provides an output plugin for the Warp terminal.
package warp

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/paths"
)

// Plugin implements the output.Plugin interface for Warp.
type Plugin struct {
	outputDir string
	resolver  paths.Resolver
	logger    hclog.Logger
}

// New creates a new Warp output plugin with default settings.
func New() *Plugin {
	return &Plugin{
		resolver: paths.Default(),
		logger:   hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "warp"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "terminal emulator"
}

// Label returns the application's display name.
func (p *Plugin) Label() string {
	return "Warp"
}

// ProcessNames returns the executable names Warp runs as.
func (p *Plugin) ProcessNames() []string {
	return []string{"warp", "warp-terminal", "stable"}
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "warp.output-dir", "", "Output directory (default: ~/.warp/themes)")
}

// SetLogger sets the logger for diagnostic output.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = logger
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}
	return p.resolver.WarpThemesDir()
}

// FileName returns the theme file name for a variant, e.g. "scalar_dark.yaml".
func FileName(td *colour.ThemeData, v colour.Variant) string {
	return strings.ReplaceAll(td.Slug(), "-", "_") + "_" + v.String() + ".yaml"
}

// Generate creates the dark and light theme files.
// Returns map of filename -> content.
func (p *Plugin) Generate(themeData *colour.ThemeData) (map[string][]byte, error) {
	if themeData == nil {
		return nil, fmt.Errorf("theme data cannot be nil")
	}

	files := make(map[string][]byte)
	for _, v := range colour.Variants() {
		content, err := Render(themeData, v)
		if err != nil {
			return nil, err
		}
		name := FileName(themeData, v)
		p.logger.Debug("rendered theme", "file", name, "bytes", len(content))
		files[name] = content
	}
	return files, nil
}

// Notes tells the user that Warp themes are selected by hand.
func (p *Plugin) Notes() []string {
	return []string{"Select 'Scalar Dark' or 'Scalar Light' in Warp Settings > Appearance > Themes"}
}
