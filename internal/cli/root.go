// Package cli provides the command-line interface for scalar-themes.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/console"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/ghostty"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/neovim"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/opencode"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/warp"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/zed"
	"github.com/jmylchreest/scalar-themes/internal/process"
	"github.com/jmylchreest/scalar-themes/internal/prompt"
	"github.com/jmylchreest/scalar-themes/internal/version"
)

// themeName is the theme family every plugin renders.
const themeName = "Scalar"

// app carries the state shared by all commands.
type app struct {
	registry *output.Registry
	logger   hclog.Logger
	console  *console.Printer

	verbose bool
	quiet   bool

	findProcesses func(names ...string) ([]int, error)
	selectTools   func(ctx context.Context, title string, choices []prompt.Choice) ([]string, error)
}

// DefaultPlugins returns the built-in output plugins in install order.
func DefaultPlugins() []output.Plugin {
	return []output.Plugin{
		ghostty.New(),
		neovim.New(),
		zed.New(),
		opencode.New(),
		warp.New(),
	}
}

func newApp(plugins ...output.Plugin) *app {
	registry := output.NewRegistry()
	for _, p := range plugins {
		registry.Register(p)
	}
	return &app{
		registry:      registry,
		logger:        hclog.NewNullLogger(),
		console:       console.New(os.Stdout),
		findProcesses: process.FindByName,
		selectTools:   prompt.MultiSelect,
	}
}

// NewRootCmd builds the command tree with the default plugins.
func NewRootCmd() *cobra.Command {
	return newApp(DefaultPlugins()...).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scalar-themes",
		Short: "Install the Scalar colour theme across your terminal and editors",
		Long: `scalar-themes writes the Scalar light and dark themes into the native theme
formats of Ghostty, Neovim, Zed, OpenCode and Warp, and points each tool's
config at them where it can.

The 256-colour terminal palette is derived from the 16 base colours by
interpolating in CIE LAB.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(
		a.installCmd(),
		a.renderCmd(),
		a.previewCmd(),
		a.exportCmd(),
		a.checkCmd(),
		a.listCmd(),
		a.templatesCmd(),
		versionCmd(),
	)
	return cmd
}

// setup configures logging once flags are parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := hclog.Info
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Warn
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:        "scalar-themes",
		Level:       level,
		Output:      cmd.ErrOrStderr(),
		DisableTime: true,
		Color:       hclog.AutoColor,
	})
	a.console = console.New(cmd.OutOrStdout())
	a.console.SetQuiet(a.quiet)

	for _, p := range a.registry.All() {
		if la, ok := p.(output.LoggerAware); ok {
			la.SetLogger(a.logger.Named(p.Name()))
		}
	}
	return nil
}

// label returns a plugin's display name.
func label(p output.Plugin) string {
	if pn, ok := p.(output.ProcessNamer); ok {
		return pn.Label()
	}
	return p.Name()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
