package cli

import (
	"fmt"
	"io"

	"github.com/Adamcf123/OpenSpec/internal/frontmatter"
	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/Adamcf123/OpenSpec/internal/linker"
	"github.com/Adamcf123/OpenSpec/internal/output"
	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the project config and slash command frontmatter",
	Long: `Check that openspec.yaml parses and names known tools, and validate the frontmatter
of every generated slash command file against the command metadata schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := projectPath()
		if err != nil {
			return err
		}
		opts, err := integrationOptions("")
		if err != nil {
			return err
		}

		p := output.New(cmd.OutOrStdout())
		problems, err := runDoctor(cmd.OutOrStdout(), p, cwd, opts)
		if err != nil {
			return err
		}
		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		p.Success("No problems found")
		return nil
	},
}

func runDoctor(w io.Writer, p *output.Printer, projectPath string, opts integrations.Options) (int, error) {
	problems := 0
	fsys := opts.FS
	if fsys == nil {
		fsys = platform.OS{}
	}

	config, err := linker.LoadProject(fsys, projectPath)
	if err != nil {
		return 0, err
	}
	if _, err := integrations.ParseToolNames(config.Tools); err != nil {
		p.Warn("%s: %v", linker.ProjectConfigPath(projectPath), err)
		problems++
	} else {
		p.Success("%s is valid", linker.ProjectConfigPath(projectPath))
	}

	for _, name := range integrations.AllTools() {
		c, err := integrations.NewConfigurator(name, opts)
		if err != nil {
			return problems, err
		}
		if !c.Tool().Available() {
			continue
		}

		for _, target := range c.Targets() {
			path := c.ResolveAbsolutePath(projectPath, target.ID)
			exists, err := fsys.Exists(path)
			if err != nil {
				return problems, err
			}
			if !exists {
				continue
			}

			content, err := fsys.ReadFile(path)
			if err != nil {
				return problems, err
			}
			fm, _ := frontmatter.Extract(content)
			if fm == "" {
				logger.Debug("no frontmatter", "path", path)
				continue
			}

			result, err := frontmatter.Validate(fm)
			if err != nil {
				p.Issues(path, []frontmatter.ValidationIssue{{Message: err.Error()}})
				problems++
				continue
			}
			if !result.Valid {
				p.Issues(path, result.Issues)
				problems++
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", output.MarkOK, target.Path)
		}
	}

	return problems, nil
}
