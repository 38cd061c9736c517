package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adamcf123/OpenSpec/internal/linker"
	"github.com/Adamcf123/OpenSpec/internal/output"
	"github.com/Adamcf123/OpenSpec/internal/watch"
	"github.com/spf13/cobra"
)

var (
	updateWatch  bool
	updateDryRun bool
)

func init() {
	updateCmd.Flags().BoolVarP(&updateWatch, "watch", "w", false, "Keep running and update again when template overrides change")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Show the files update would rewrite without touching disk")
	updateCmd.MarkFlagsMutuallyExclusive("watch", "dry-run")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh AGENTS.md and existing slash command files",
	Long: `Refresh the spec directory instructions and rewrite the body of every slash command
file that already exists, for every supported tool. Frontmatter is preserved. Files
that do not exist are never created; use init for that.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := projectPath()
		if err != nil {
			return err
		}
		opts, err := integrationOptions("")
		if err != nil {
			return err
		}
		opts, report := withDryRun(opts, updateDryRun)
		p := output.New(cmd.OutOrStdout())

		run := func() error {
			result, err := linker.Update(cwd, linker.UpdateOptions{
				Version:      buildVersion,
				Integrations: opts,
				Logger:       logger,
			})
			if result != nil {
				for _, w := range result.Warnings {
					p.Warn("%s", w)
				}
				if result.AgentsRefreshed {
					p.Success("Refreshed %s", "AGENTS.md")
				}
				p.Generate(result.Tools)
			}
			if err != nil {
				return fmt.Errorf("updating project: %w", err)
			}
			return nil
		}

		if err := run(); err != nil {
			return err
		}
		if updateDryRun {
			report(p)
			return nil
		}
		if !updateWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watch.New(linker.SpecRoot(cwd), linker.OverridesPath(cwd), run, logger)
		return w.Run(ctx)
	},
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
