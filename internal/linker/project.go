package linker

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/Adamcf123/OpenSpec/internal/branding"
	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/Adamcf123/OpenSpec/internal/templates"
	"go.yaml.in/yaml/v3"
)

const projectFile = "openspec.yaml"

// ProjectConfig represents the openspec/openspec.yaml structure.
type ProjectConfig struct {
	Tools  []string `yaml:"tools"`
	Locale string   `yaml:"locale,omitempty"`
	// Version is the CLI version that last generated command files.
	Version string `yaml:"version,omitempty"`
}

// SpecRoot returns the spec directory of a project.
func SpecRoot(projectPath string) string {
	return filepath.Join(projectPath, branding.SpecDir())
}

// ProjectConfigPath returns the full path to openspec/openspec.yaml for a project.
func ProjectConfigPath(projectPath string) string {
	return filepath.Join(SpecRoot(projectPath), projectFile)
}

// OverridesPath returns the directory holding per-project command body overrides.
func OverridesPath(projectPath string) string {
	return filepath.Join(SpecRoot(projectPath), templates.OverridesDir)
}

// IsInitialized reports whether the project has an openspec.yaml.
func IsInitialized(fsys platform.FS, projectPath string) (bool, error) {
	return fsys.Exists(ProjectConfigPath(projectPath))
}

// LoadProject reads and parses openspec/openspec.yaml from the given project directory.
func LoadProject(fsys platform.FS, projectPath string) (*ProjectConfig, error) {
	data, err := fsys.ReadFile(ProjectConfigPath(projectPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotInitialized, projectPath)
		}
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	var config ProjectConfig
	if err := yaml.Unmarshal([]byte(data), &config); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}

	return &config, nil
}

// SaveProject writes the project config to openspec/openspec.yaml.
func SaveProject(fsys platform.FS, projectPath string, config *ProjectConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	if err := fsys.WriteFile(ProjectConfigPath(projectPath), string(data)); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}

	return nil
}
