package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeToolTable(cmd.OutOrStdout())
		},
	}
}

func (a *app) writeToolTable(w io.Writer) error {
	table := NewTable([]string{"TOOL", "NAME", "DESCRIPTION", "INSTALLS TO"})
	table.SetColumnMaxWidth(2, 30)

	for _, p := range a.registry.All() {
		table.AddRow([]string{
			p.Name(),
			label(p),
			p.Description(),
			strings.Join(output.OutputDirs(p), ", "),
		})
	}

	_, err := fmt.Fprint(w, table.Render())
	return err
}
