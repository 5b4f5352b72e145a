// Package ghostty provides an output plugin for Ghostty terminal themes.
package ghostty

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/paths"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
)

// ThemeLine selects the Scalar themes by name, following the system
// appearance.
const ThemeLine = "theme = dark:scalar-dark,light:scalar-light"

var themeLinePattern = regexp.MustCompile(`(?m)^theme\s*=\s*[^\r\n]+`)

// Plugin implements the output.Plugin interface for Ghostty.
type Plugin struct {
	outputDir string
	mode      Mode
	resolver  paths.Resolver
	run       CommandRunner
	logger    hclog.Logger

	// Set by PreExecute.
	options       *ThemeOptions
	activeConfigs []string
}

// New creates a new Ghostty output plugin with default settings.
func New() *Plugin {
	return &Plugin{
		mode:     ModeAuto,
		resolver: paths.Default(),
		run:      execRunner,
		logger:   hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "ghostty"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "terminal emulator"
}

// Label returns the application's display name.
func (p *Plugin) Label() string {
	return "Ghostty"
}

// ProcessNames returns the executable names Ghostty runs as.
func (p *Plugin) ProcessNames() []string {
	return []string{"ghostty", "Ghostty"}
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "ghostty.output-dir", "", "Output directory (default: Ghostty config directories)")
	cmd.Flags().Var(&p.mode, "ghostty.mode", "Extended palette mode: auto, generate or explicit")
}

// SetLogger sets the logger for diagnostic output.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = logger
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return p.mode.Set(string(p.mode))
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	return p.OutputDirs()[0]
}

// OutputDirs returns every Ghostty config directory that receives the theme
// files.
func (p *Plugin) OutputDirs() []string {
	if p.outputDir != "" {
		return []string{p.outputDir}
	}
	return p.resolver.Ghostty()
}

// Generate creates the dark and light theme files.
// Returns map of filename -> content.
func (p *Plugin) Generate(themeData *colour.ThemeData) (map[string][]byte, error) {
	if themeData == nil {
		return nil, fmt.Errorf("theme data cannot be nil")
	}

	opts := p.themeOptions()
	files := make(map[string][]byte)
	for _, v := range colour.Variants() {
		files["themes/"+themeData.Slug()+"-"+v.String()] = []byte(CreateTheme(v, opts))
	}
	return files, nil
}

// themeOptions returns the options resolved by PreExecute, or the options
// implied by the mode flag when PreExecute has not run. Auto without
// detection writes the explicit palette, which every version reads.
func (p *Plugin) themeOptions() ThemeOptions {
	if p.options != nil {
		return *p.options
	}
	if p.mode == ModeGenerate {
		return GenerateMode()
	}
	return ExplicitMode()
}

// PreExecute locates the Ghostty config files and picks the palette mode.
// Implements the output.PreExecuteHook interface.
func (p *Plugin) PreExecute(ctx context.Context) (skip bool, reason string, err error) {
	p.activeConfigs = p.activeConfigs[:0]
	var expected []string
	for _, dir := range p.OutputDirs() {
		config := filepath.Join(dir, "config")
		expected = append(expected, "Expected: "+config)
		if _, err := os.Stat(config); err == nil {
			p.activeConfigs = append(p.activeConfigs, config)
		}
	}

	if len(p.activeConfigs) == 0 {
		lines := append([]string{"Ghostty config not found"}, expected...)
		lines = append(lines, "Create it and run this command again.")
		return true, strings.Join(lines, "\n"), nil
	}

	opts := p.resolveOptions(ctx)
	p.options = &opts
	return false, "", nil
}

func (p *Plugin) resolveOptions(ctx context.Context) ThemeOptions {
	switch p.mode {
	case ModeGenerate:
		return GenerateMode()
	case ModeExplicit:
		return ExplicitMode()
	}

	v, err := DetectVersion(ctx, p.run)
	if err != nil {
		p.logger.Warn("could not detect Ghostty version; installing explicit 256-color theme files", "error", err)
		return ExplicitMode()
	}
	if SupportsPaletteGenerate(v) {
		p.logger.Info("palette-generate supported", "version", v.String())
		return GenerateMode()
	}
	p.logger.Info("using compatibility mode (explicit 256-color palette entries)", "version", v.String())
	return ExplicitMode()
}

// PostExecute points every active Ghostty config at the installed themes.
// Implements the output.PostExecuteHook interface.
func (p *Plugin) PostExecute(ctx context.Context, writtenFiles []string) error {
	var errs []error
	for _, config := range p.activeConfigs {
		if err := UpdateConfig(config); err != nil {
			errs = append(errs, err)
			continue
		}
		p.logger.Info("updated config", "path", config)
	}

	if err := errors.Join(errs...); err != nil {
		return &output.Warning{
			Message: "Could not update Ghostty config",
			Hint:    "Add this line to your Ghostty config: " + ThemeLine,
			Err:     err,
		}
	}
	return nil
}

// UpdateConfig rewrites the first theme line of a Ghostty config, or appends
// one when the config has none.
func UpdateConfig(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated := SetThemeLine(string(content))
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SetThemeLine returns config with its first theme line replaced by
// ThemeLine.
func SetThemeLine(config string) string {
	if loc := themeLinePattern.FindStringIndex(config); loc != nil {
		return config[:loc[0]] + ThemeLine + config[loc[1]:]
	}
	return strings.TrimRightFunc(config, unicode.IsSpace) + "\n" + ThemeLine + "\n"
}
