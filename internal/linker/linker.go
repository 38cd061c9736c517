package linker

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Adamcf123/OpenSpec/internal/branding"
	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/Adamcf123/OpenSpec/internal/scaffold"
	"github.com/Adamcf123/OpenSpec/internal/templates"
	"github.com/Adamcf123/OpenSpec/internal/updater"
)

var (
	// ErrAlreadyInitialized is returned by InitProject when openspec.yaml exists.
	ErrAlreadyInitialized = errors.New("project already initialized")
	// ErrNotInitialized is returned when openspec.yaml is missing.
	ErrNotInitialized = errors.New("project not initialized")
)

// DefaultLocale is recorded when init is given no locale.
const DefaultLocale = "en"

// InitOptions configure InitProject.
type InitOptions struct {
	Tools []integrations.ToolName
	// Name is the project name written into project.md.
	Name    string
	Locale  string
	Version string
	// Integrations carries CodexHome and optional FS or body overrides.
	Integrations integrations.Options
	Logger       *slog.Logger
}

// InitResult summarizes what InitProject wrote.
type InitResult struct {
	Scaffold *scaffold.Result
	Tools    []integrations.GenerateResult
}

// UpdateOptions configure Update.
type UpdateOptions struct {
	Version      string
	Integrations integrations.Options
	Logger       *slog.Logger
}

// UpdateResult summarizes what Update touched.
type UpdateResult struct {
	AgentsRefreshed bool
	Tools           []integrations.GenerateResult
	Drift           updater.Drift
	Warnings        []string
}

// InitProject scaffolds the spec directory, saves openspec.yaml, and
// generates slash commands for the chosen tools.
func InitProject(projectPath string, opts InitOptions) (*InitResult, error) {
	log := loggerOrDefault(opts.Logger)
	intOpts := withFS(opts.Integrations)

	initialized, err := IsInitialized(intOpts.FS, projectPath)
	if err != nil {
		return nil, err
	}
	if initialized {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyInitialized, ProjectConfigPath(projectPath))
	}

	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	if intOpts.Locale == "" {
		intOpts.Locale = locale
	}
	intOpts, err = withBodies(projectPath, intOpts)
	if err != nil {
		return nil, err
	}

	data := scaffold.NewProjectContext(projectPath, opts.Name)
	scaffolded, err := scaffold.Generate(intOpts.FS, projectPath, branding.SpecDir(), data)
	if err != nil {
		return nil, fmt.Errorf("scaffolding %s: %w", branding.SpecDir(), err)
	}
	log.Debug("scaffold written", "files", len(scaffolded.Files), "skipped", len(scaffolded.Skipped))

	config := &ProjectConfig{
		Tools:  toolStrings(opts.Tools),
		Locale: locale,
	}
	if updater.Valid(opts.Version) {
		config.Version = opts.Version
	}
	if err := SaveProject(intOpts.FS, projectPath, config); err != nil {
		return nil, err
	}

	results, err := integrations.Generate(opts.Tools, projectPath, branding.SpecDir(), intOpts)
	if err != nil {
		return &InitResult{Scaffold: scaffolded, Tools: results}, fmt.Errorf("generating slash commands: %w", err)
	}
	for _, r := range results {
		log.Debug("slash commands generated", "tool", r.Tool, "written", len(r.Written), "skipped", r.Skipped)
	}

	return &InitResult{Scaffold: scaffolded, Tools: results}, nil
}

// Update refreshes openspec/AGENTS.md and the body of every existing command
// file across all supported tools, then records the running version.
func Update(projectPath string, opts UpdateOptions) (*UpdateResult, error) {
	log := loggerOrDefault(opts.Logger)
	intOpts := withFS(opts.Integrations)

	config, err := LoadProject(intOpts.FS, projectPath)
	if err != nil {
		return nil, err
	}

	if intOpts.Locale == "" {
		intOpts.Locale = config.Locale
	}
	intOpts, err = withBodies(projectPath, intOpts)
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{Drift: updater.CheckProject(config.Version, opts.Version)}
	if result.Drift == updater.DriftProjectNewer {
		msg := fmt.Sprintf("project was generated by %s %s, newer than this binary (%s)",
			branding.CLIName(), config.Version, opts.Version)
		result.Warnings = append(result.Warnings, msg)
		log.Warn("project generated by newer version", "recorded", config.Version, "running", opts.Version)
	}

	refreshed, err := scaffold.RefreshAgents(intOpts.FS, projectPath, branding.SpecDir())
	if err != nil {
		return nil, fmt.Errorf("refreshing AGENTS.md: %w", err)
	}
	result.AgentsRefreshed = refreshed

	results, err := integrations.UpdateExisting(integrations.AllTools(), projectPath, branding.SpecDir(), intOpts)
	result.Tools = results
	if err != nil {
		return result, fmt.Errorf("updating slash commands: %w", err)
	}
	for _, r := range results {
		if len(r.Written) > 0 {
			log.Debug("slash commands updated", "tool", r.Tool, "written", len(r.Written))
		}
	}

	if updater.Valid(opts.Version) && result.Drift != updater.DriftProjectNewer && config.Version != opts.Version {
		config.Version = opts.Version
		if err := SaveProject(intOpts.FS, projectPath, config); err != nil {
			return result, err
		}
	}

	return result, nil
}

// Status reports the state of the command files of every configured tool.
func Status(projectPath string, opts integrations.Options) ([]integrations.StatusResult, error) {
	opts = withFS(opts)
	config, err := LoadProject(opts.FS, projectPath)
	if err != nil {
		return nil, err
	}

	tools, err := integrations.ParseToolNames(config.Tools)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ProjectConfigPath(projectPath), err)
	}

	if opts.Locale == "" {
		opts.Locale = config.Locale
	}
	opts, err = withBodies(projectPath, opts)
	if err != nil {
		return nil, err
	}

	return integrations.Status(tools, projectPath, opts)
}

// withFS fills in the OS file system when the caller supplied none.
func withFS(opts integrations.Options) integrations.Options {
	if opts.FS == nil {
		opts.FS = platform.OS{}
	}
	return opts
}

// withBodies fills in the override-aware body provider for the project,
// reading overrides through opts.FS.
func withBodies(projectPath string, opts integrations.Options) (integrations.Options, error) {
	if opts.Bodies == nil {
		bodies, err := templates.WithOverrides(templates.Embedded(), opts.FS, OverridesPath(projectPath))
		if err != nil {
			return opts, err
		}
		opts.Bodies = bodies
	}
	return opts, nil
}

func toolStrings(tools []integrations.ToolName) []string {
	out := make([]string, 0, len(tools))
	for _, t := range tools {
		out = append(out, string(t))
	}
	return out
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
