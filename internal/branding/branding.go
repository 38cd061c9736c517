// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only edits the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	SpecDir          string `yaml:"spec_dir"`
	CommandNamespace string `yaml:"command_namespace"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "openspec",
			DisplayName:      "OpenSpec",
			Description:      "Spec-driven change workflow for AI coding assistants",
			HomeDir:          ".openspec",
			EnvPrefix:        "OPENSPEC",
			SpecDir:          "openspec",
			CommandNamespace: "openspec",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "openspec").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".openspec").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "OPENSPEC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// SpecDir returns the project-level directory holding specs and changes.
func SpecDir() string { load(); return defaults.SpecDir }

// CommandNamespace is the prefix or folder used for generated slash commands.
func CommandNamespace() string { load(); return defaults.CommandNamespace }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "OPENSPEC_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
