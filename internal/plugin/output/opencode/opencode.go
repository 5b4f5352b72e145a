// Package opencode provides an output plugin for the OpenCode AI coding agent.
package opencode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/paths"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/common"
)

// ThemeName is the name OpenCode knows the theme by.
const ThemeName = "scalar-adaptive"

// ThemeFile is the theme file written under the config directory.
const ThemeFile = "themes/" + ThemeName + ".json"

// Plugin implements the output.Plugin interface for OpenCode.
type Plugin struct {
	outputDir string
	resolver  paths.Resolver
	logger    hclog.Logger
}

// New creates a new OpenCode output plugin with default settings.
func New() *Plugin {
	return &Plugin{
		resolver: paths.Default(),
		logger:   hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "opencode"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "AI coding agent"
}

// Label returns the application's display name.
func (p *Plugin) Label() string {
	return "OpenCode"
}

// ProcessNames returns the executable names OpenCode runs as.
func (p *Plugin) ProcessNames() []string {
	return []string{"opencode"}
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "opencode.output-dir", "", "Output directory (default: ~/.config/opencode)")
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
	return p.resolver.OpenCodeDir()
}

// ConfigPath returns the path of opencode.json.
func (p *Plugin) ConfigPath() string {
	return filepath.Join(p.DefaultOutputDir(), "opencode.json")
}

// Generate creates the adaptive theme file.
// Returns map of filename -> content.
func (p *Plugin) Generate(themeData *colour.ThemeData) (map[string][]byte, error) {
	if themeData == nil {
		return nil, fmt.Errorf("theme data cannot be nil")
	}

	content, err := Render(themeData)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{ThemeFile: content}, nil
}

// PostExecute selects the theme in opencode.json.
// Implements the output.PostExecuteHook interface.
func (p *Plugin) PostExecute(ctx context.Context, writtenFiles []string) error {
	config := p.ConfigPath()

	if _, err := os.Stat(config); errors.Is(err, os.ErrNotExist) {
		return &output.Warning{
			Message: "OpenCode config not found",
			Hint:    fmt.Sprintf(`Create %s with: { "theme": "%s" }`, config, ThemeName),
		}
	}

	err := common.UpdateJSONConfig(config, "theme", ThemeName)
	if err != nil {
		return &output.Warning{
			Message: "Could not auto-update OpenCode config",
			Hint:    fmt.Sprintf(`Set "theme": "%s" in your opencode.json`, ThemeName),
			Err:     err,
		}
	}

	p.logger.Info("updated config", "path", config)
	return nil
}
