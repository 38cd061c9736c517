package cli

import (
	"fmt"

	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/Adamcf123/OpenSpec/internal/output"
	"github.com/Adamcf123/OpenSpec/internal/slash"
	"github.com/Adamcf123/OpenSpec/internal/templates"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List supported AI tools and where their commands are written",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := integrationOptions("")
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(integrations.AllTools()))
		for _, name := range integrations.AllTools() {
			tool, err := integrations.NewTool(name, opts)
			if err != nil {
				return err
			}
			base := "<project>"
			if r, ok := tool.(slash.BaseDirResolver); ok {
				base = r.BaseDir("")
			}
			available := "yes"
			if !tool.Available() {
				available = "no"
			}
			rows = append(rows, []string{
				string(name),
				tool.Policy().String(),
				base + "/" + tool.RelativePath(templates.Proposal),
				available,
			})
		}

		fmt.Fprintln(cmd.OutOrStdout(), output.Table([]string{"TOOL", "POLICY", "PROPOSAL PATH", "AVAILABLE"}, rows))
		return nil
	},
}
