package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Adamcf123/OpenSpec/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyLocale = "locale"
	KeyTools  = "tools"
)

// Dir returns the path to the user config directory (~/.openspec/), or
// $OPENSPEC_HOME when set.
func Dir() string {
	if env, err := ParseEnv(); err == nil && env.Home != "" {
		return env.Home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Store wraps a viper instance bound to one config file.
type Store struct {
	v    *viper.Viper
	path string
}

// Load reads the config file at path (missing files are fine) and binds
// environment variables with the branding prefix, e.g. OPENSPEC_LOCALE.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLocale, "en")
	v.SetDefault(KeyTools, []string{"claude"})

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// LoadDefault loads the user config from FilePath.
func LoadDefault() (*Store, error) {
	return Load(FilePath())
}

// Get returns a config value by key. Returns empty string if not set.
// List values are joined with commas.
func (s *Store) Get(key string) string {
	if key == KeyTools {
		return strings.Join(s.Tools(), ",")
	}
	return s.v.GetString(key)
}

// Locale returns the preferred frontmatter locale.
func (s *Store) Locale() string {
	return s.v.GetString(KeyLocale)
}

// Tools returns the default tool list for new projects.
func (s *Store) Tools() []string {
	return s.v.GetStringSlice(KeyTools)
}

// Set writes a config key-value pair and saves the config file.
func (s *Store) Set(key, value string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if key == KeyTools {
		s.v.Set(key, splitList(value))
	} else {
		s.v.Set(key, value)
	}

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
