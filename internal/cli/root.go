package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Adamcf123/OpenSpec/internal/branding"
	"github.com/Adamcf123/OpenSpec/internal/output"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose    bool
	projectDir string
	logger     = slog.Default()
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "C", ".", "Project directory")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a spec-driven workflow into a project and keeps the
proposal, apply, and archive slash commands of each AI coding assistant in sync.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", output.StyleError.Render("Error:"), err)
	}
	return err
}

// projectPath resolves the --project flag to an absolute path.
func projectPath() (string, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory: %w", err)
	}
	return abs, nil
}
