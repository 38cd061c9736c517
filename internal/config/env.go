package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment variables the generators honour.
type Env struct {
	// Home overrides the user config directory.
	Home string `env:"OPENSPEC_HOME"`
	// Locale overrides the configured frontmatter locale.
	Locale string `env:"OPENSPEC_LOCALE"`
	// CodexHome is where Codex reads global prompts.
	CodexHome string `env:"CODEX_HOME"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// CodexHomeDir returns $CODEX_HOME, falling back to ~/.codex. It returns ""
// when neither can be resolved.
func (e Env) CodexHomeDir() string {
	if e.CodexHome != "" {
		return e.CodexHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codex")
}
