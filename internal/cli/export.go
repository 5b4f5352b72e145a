package cli

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/consistency"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
)

// paletteFile is the palette dump written at the root of an export.
const paletteFile = "palette.json"

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every tool's theme files into a directory",
		Long: `Write the generated theme files of every tool under <dir>/<tool>/, plus
palette.json with both palettes. The tree can be committed or verified with
"scalar-themes check".

Example:
  scalar-themes export ./themes`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runExport(args[0])
		},
	}
}

func (a *app) runExport(dir string) error {
	palette, err := colour.ToJSON()
	if err != nil {
		return err
	}
	if err := a.writeExported(filepath.Join(dir, paletteFile), palette); err != nil {
		return err
	}

	themeData := colour.NewThemeData(themeName)
	for _, p := range a.registry.All() {
		files, err := p.Generate(themeData)
		if err != nil {
			return fmt.Errorf("failed to generate %s files: %w", p.Name(), err)
		}
		for _, name := range slices.Sorted(maps.Keys(files)) {
			if err := a.writeExported(filepath.Join(dir, p.Name(), name), files[name]); err != nil {
				return err
			}
		}
	}

	a.console.Ok("Exported %d tool(s) to %s", len(a.registry.List()), dir)
	return nil
}

func (a *app) writeExported(path string, content []byte) error {
	if err := output.WriteFile(path, content); err != nil {
		return err
	}
	a.console.Dim("%s (%s)", path, humanize.Bytes(uint64(len(content))))
	return nil
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir>",
		Short: "Verify an exported theme tree against the palette",
		Long: `Check that the files of an exported theme tree carry the current palette
values and none of the retired ones. Exits non-zero when any check fails.

Example:
  scalar-themes export ./themes && scalar-themes check ./themes`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runCheck(args[0])
		},
	}
}

func (a *app) runCheck(dir string) error {
	failures := consistency.Check(os.DirFS(dir), consistency.DefaultRules(), consistency.DeprecatedTokens, consistency.DefaultScanFiles())
	if len(failures) > 0 {
		a.console.Error("Theme consistency checks failed:")
		for _, f := range failures {
			a.console.Error("- %s", f)
		}
		return fmt.Errorf("%d consistency check(s) failed", len(failures))
	}

	a.console.Ok("Theme consistency checks passed.")
	return nil
}
