package cli

import (
	"fmt"
	"strings"

	"github.com/Adamcf123/OpenSpec/internal/branding"
	"github.com/Adamcf123/OpenSpec/internal/config"
	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/Adamcf123/OpenSpec/internal/linker"
	"github.com/Adamcf123/OpenSpec/internal/output"
	"github.com/spf13/cobra"
)

var (
	initTools  string
	initLocale string
	initName   string
	initDryRun bool
)

func init() {
	initCmd.Flags().StringVar(&initTools, "tools", "", "Comma-separated list of AI tools to configure (default from config)")
	initCmd.Flags().StringVar(&initLocale, "locale", "", "Frontmatter locale, e.g. en or zh-Hans (default from config)")
	initCmd.Flags().StringVar(&initName, "name", "", "Project name used in project.md (default: directory name)")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "Show the files init would write without touching disk")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize " + branding.DisplayName() + " in a project",
	Long: `Create the spec directory (AGENTS.md, project.md, change templates) and generate
the proposal, apply, and archive slash commands for the selected AI tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := projectPath()
		if err != nil {
			return err
		}

		store, err := config.LoadDefault()
		if err != nil {
			return err
		}

		names := store.Tools()
		if initTools != "" {
			names = parseToolsList(initTools)
		}
		if len(names) == 0 {
			return fmt.Errorf("at least one tool must be specified via --tools")
		}
		tools, err := integrations.ParseToolNames(names)
		if err != nil {
			return err
		}

		locale := initLocale
		if locale == "" {
			locale = store.Locale()
		}
		opts, err := integrationOptions(locale)
		if err != nil {
			return err
		}
		opts, report := withDryRun(opts, initDryRun)

		p := output.New(cmd.OutOrStdout())
		p.Header(fmt.Sprintf("Initializing %s in %s", branding.DisplayName(), cwd))
		p.Info("Tools: %s", strings.Join(names, ", "))

		result, err := linker.InitProject(cwd, linker.InitOptions{
			Tools:        tools,
			Name:         initName,
			Locale:       opts.Locale,
			Version:      buildVersion,
			Integrations: opts,
			Logger:       logger,
		})
		if result != nil {
			p.Scaffold(result.Scaffold)
			p.Generate(result.Tools)
		}
		if err != nil {
			return fmt.Errorf("initializing project: %w", err)
		}
		if initDryRun {
			report(p)
			return nil
		}

		p.Success("Project initialized. Created %s", linker.ProjectConfigPath(cwd))
		return nil
	},
}

func parseToolsList(s string) []string {
	parts := strings.Split(s, ",")
	tools := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			tools = append(tools, trimmed)
		}
	}
	return tools
}
