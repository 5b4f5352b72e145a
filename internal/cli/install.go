package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
	"github.com/jmylchreest/scalar-themes/internal/prompt"
)

const (
	preHookTimeout  = 5 * time.Second
	postHookTimeout = 10 * time.Second
)

type installOptions struct {
	all    bool
	dryRun bool
}

func (a *app) installCmd() *cobra.Command {
	opts := &installOptions{}
	cmd := &cobra.Command{
		Use:   "install [tool...]",
		Short: "Install the theme into one or more tools",
		Long: `Install the Scalar theme files and point each tool's config at them.

With no arguments an interactive picker lists every tool, all pre-selected.

Examples:
  scalar-themes install
  scalar-themes install ghostty zed
  scalar-themes install --all
  scalar-themes install --all --dry-run
  scalar-themes install ghostty --ghostty.mode explicit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "install every tool")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show what would be written without touching any file")

	for _, p := range a.registry.All() {
		p.RegisterFlags(cmd)
	}
	return cmd
}

func (a *app) runInstall(ctx context.Context, args []string, opts *installOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a.console.Header("Scalar Themes")
	a.console.Dim("Scalar-based color themes for your terminal and editor")
	a.console.Blank()

	plugins, err := a.selectPlugins(ctx, args, opts.all)
	if errors.Is(err, prompt.ErrAborted) {
		a.console.Warn("Aborted")
		return nil
	}
	if err != nil {
		return err
	}
	if len(plugins) == 0 {
		a.console.Warn("No tools selected")
		return nil
	}

	themeData := colour.NewThemeData(themeName)
	var failed []string
	for _, p := range plugins {
		a.console.Info("Installing %s...", label(p))
		if err := a.installPlugin(ctx, p, themeData, opts.dryRun); err != nil {
			a.console.Error("%s: %v", label(p), err)
			failed = append(failed, p.Name())
		}
		a.console.Blank()
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to install %s", strings.Join(failed, ", "))
	}
	if opts.dryRun {
		a.console.Ok("Dry run complete. No files were written.")
	} else {
		a.console.Ok("Done. Restart your apps to see the changes.")
	}
	a.console.Blank()
	return nil
}

// selectPlugins resolves tool names, --all, or the interactive picker into
// plugins in registration order.
func (a *app) selectPlugins(ctx context.Context, args []string, all bool) ([]output.Plugin, error) {
	if all {
		return a.registry.All(), nil
	}

	if len(args) == 0 {
		choices := make([]prompt.Choice, 0, len(a.registry.List()))
		for _, p := range a.registry.All() {
			choices = append(choices, prompt.Choice{Label: label(p), Value: p.Name(), Description: p.Description()})
		}
		selected, err := a.selectTools(ctx, "Select tools to theme:", choices)
		if err != nil {
			return nil, err
		}
		args = selected
	}

	var invalid []string
	plugins := make([]output.Plugin, 0, len(args))
	for _, name := range args {
		p, ok := a.registry.Get(name)
		if !ok {
			invalid = append(invalid, name)
			continue
		}
		if !slices.Contains(plugins, p) {
			plugins = append(plugins, p)
		}
	}

	if len(invalid) > 0 {
		a.console.Error("Unknown tool(s): %s", strings.Join(invalid, ", "))
		a.console.Hint("Valid options: %s, --all", strings.Join(a.registry.List(), ", "))
		return nil, fmt.Errorf("unknown tool(s): %s", strings.Join(invalid, ", "))
	}
	return plugins, nil
}

// installPlugin runs one plugin end to end. Skips and warnings are reported
// and are not errors.
func (a *app) installPlugin(ctx context.Context, p output.Plugin, themeData *colour.ThemeData, dryRun bool) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	skip, reason, err := runPreHook(ctx, p)
	if err != nil {
		return fmt.Errorf("pre-execution check failed: %w", err)
	}
	if skip {
		a.printReason(reason)
		return nil
	}

	files, err := p.Generate(themeData)
	if err != nil {
		return fmt.Errorf("failed to generate theme files: %w", err)
	}

	written, err := a.writeFiles(p, files, dryRun)
	if err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	if post, ok := p.(output.PostExecuteHook); ok {
		hookCtx, cancel := context.WithTimeout(ctx, postHookTimeout)
		err := post.PostExecute(hookCtx, written)
		cancel()
		if w, ok := output.AsWarning(err); ok {
			a.console.Warn("%s", w.Message)
			if w.Hint != "" {
				a.console.Hint("%s", w.Hint)
			}
			if w.Err != nil {
				a.logger.Debug("post-execute warning", "plugin", p.Name(), "error", w.Err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to update %s config: %w", label(p), err)
		} else {
			a.console.Ok("Updated %s config", label(p))
		}
	}

	if noter, ok := p.(output.Noter); ok {
		for _, note := range noter.Notes() {
			a.console.Dim("%s", note)
		}
	}

	a.noticeRunning(p)
	return nil
}

func runPreHook(ctx context.Context, p output.Plugin) (bool, string, error) {
	pre, ok := p.(output.PreExecuteHook)
	if !ok {
		return false, "", nil
	}
	hookCtx, cancel := context.WithTimeout(ctx, preHookTimeout)
	defer cancel()
	return pre.PreExecute(hookCtx)
}

// printReason prints a multi-line skip reason: the summary as a warning and
// the details dimmed.
func (a *app) printReason(reason string) {
	summary, details, _ := strings.Cut(reason, "\n")
	a.console.Warn("%s", summary)
	if details == "" {
		return
	}
	for line := range strings.SplitSeq(details, "\n") {
		a.console.Hint("%s", line)
	}
}

// writeFiles writes the generated files into every output directory of p.
func (a *app) writeFiles(p output.Plugin, files map[string][]byte, dryRun bool) ([]string, error) {
	names := slices.Sorted(maps.Keys(files))
	var written []string

	for _, dir := range output.OutputDirs(p) {
		for _, name := range names {
			content := files[name]
			path := filepath.Join(dir, name)
			if dryRun {
				a.console.Dim("Would write: %s (%s)", path, humanize.Bytes(uint64(len(content))))
				continue
			}
			if err := output.WriteFile(path, content); err != nil {
				return written, err
			}
			a.logger.Debug("wrote file", "path", path, "bytes", len(content))
			written = append(written, path)
		}
		if !dryRun {
			a.console.Ok("Copied %s theme files to %s", themeName, label(p))
			a.console.Dim("%s", dir)
		}
	}
	return written, nil
}

// noticeRunning tells the user when the application is already running.
func (a *app) noticeRunning(p output.Plugin) {
	pn, ok := p.(output.ProcessNamer)
	if !ok || a.findProcesses == nil {
		return
	}
	pids, err := a.findProcesses(pn.ProcessNames()...)
	if err != nil {
		a.logger.Debug("process lookup failed", "plugin", p.Name(), "error", err)
		return
	}
	if len(pids) > 0 {
		a.console.Info("%s is running; restart it to apply the theme", pn.Label())
	}
}
