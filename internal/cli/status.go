package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Adamcf123/OpenSpec/internal/linker"
	"github.com/Adamcf123/OpenSpec/internal/output"
	"github.com/spf13/cobra"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print status as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether generated slash commands are up to date",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := projectPath()
		if err != nil {
			return err
		}
		opts, err := integrationOptions("")
		if err != nil {
			return err
		}

		results, err := linker.Status(cwd, opts)
		if err != nil {
			return err
		}

		if statusJSON {
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling status: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		output.New(cmd.OutOrStdout()).Status(results)
		return nil
	},
}
