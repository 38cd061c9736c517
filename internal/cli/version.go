package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Adamcf123/OpenSpec/internal/branding"
	"github.com/Adamcf123/OpenSpec/internal/linker"
	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/Adamcf123/OpenSpec/internal/updater"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	Date           string `json:"date"`
	ProjectVersion string `json:"project_version,omitempty"`
	Drift          string `json:"drift,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the CLI build information. Inside an initialized project, also report the
version recorded in openspec.yaml and whether it is older or newer than this binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return nil
		}

		info := versionInfo{Version: buildVersion, Commit: buildCommit, Date: buildDate}
		if err := loadProjectVersion(&info); err != nil {
			return err
		}

		if versionJSON {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		if info.ProjectVersion != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "project generated by %s (%s)\n", info.ProjectVersion, info.Drift)
		}
		return nil
	},
}

// loadProjectVersion fills in the recorded project version and its drift.
// Uninitialized projects and configs without a version leave info unchanged.
func loadProjectVersion(info *versionInfo) error {
	cwd, err := projectPath()
	if err != nil {
		return err
	}
	config, err := linker.LoadProject(platform.OS{}, cwd)
	if errors.Is(err, linker.ErrNotInitialized) {
		return nil
	}
	if err != nil {
		return err
	}
	if config.Version == "" {
		return nil
	}
	info.ProjectVersion = config.Version
	info.Drift = updater.CheckProject(config.Version, buildVersion).String()
	return nil
}
