// Package zed provides an output plugin for the Zed editor.
package zed

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

// ThemeFile is the theme family file written under the themes directory.
const ThemeFile = "themes/scalar.json"

// Plugin implements the output.Plugin interface for Zed.
type Plugin struct {
	outputDir string
	resolver  paths.Resolver
	logger    hclog.Logger
}

// New creates a new Zed output plugin with default settings.
func New() *Plugin {
	return &Plugin{
		resolver: paths.Default(),
		logger:   hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "zed"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "text editor"
}

// Label returns the application's display name.
func (p *Plugin) Label() string {
	return "Zed"
}

// ProcessNames returns the executable names Zed runs as.
func (p *Plugin) ProcessNames() []string {
	return []string{"zed", "zed-editor", "Zed"}
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "zed.output-dir", "", "Output directory (default: Zed config directory)")
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
	return p.resolver.ZedDir()
}

// SettingsPath returns the path of Zed's settings.json.
func (p *Plugin) SettingsPath() string {
	return filepath.Join(p.DefaultOutputDir(), "settings.json")
}

// Generate creates the theme family file.
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

// PostExecute selects the Scalar themes in settings.json.
// Implements the output.PostExecuteHook interface.
func (p *Plugin) PostExecute(ctx context.Context, writtenFiles []string) error {
	settings := p.SettingsPath()

	if _, err := os.Stat(settings); errors.Is(err, os.ErrNotExist) {
		return &output.Warning{
			Message: "Zed settings.json not found -- select Scalar from the theme picker",
		}
	}

	td := colour.NewThemeData("Scalar")
	err := common.UpdateJSONConfig(settings, "theme", map[string]any{
		"mode":  "system",
		"light": td.DisplayName(colour.Light),
		"dark":  td.DisplayName(colour.Dark),
	})
	if err != nil {
		return &output.Warning{
			Message: "Could not auto-update Zed settings",
			Hint:    `Set theme to "Scalar Dark" / "Scalar Light" via the theme picker`,
			Err:     err,
		}
	}

	p.logger.Info("updated settings", "path", settings)
	return nil
}
