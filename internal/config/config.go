// Package config resolves where the todo file lives and loads the
// optional user configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/todocli/todo/internal/clierr"
)

// ErrNotFound indicates that no config file exists. Callers treat this
// as "use defaults", not as a failure.
var ErrNotFound = errors.New("config file not found")

// Default locations relative to the user's home directory.
const (
	defaultFileName = "todo.txt"
	configRelPath   = ".config/todo/config.yaml"
)

// EnvFile overrides the todo file location when set.
const EnvFile = "TODO_FILE"

// Color output modes accepted in the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the optional user configuration from ~/.config/todo/config.yaml.
type Config struct {
	// File is the todo file path; empty means the default ~/todo.txt.
	File string `yaml:"file,omitempty"`
	// Color is one of auto, always, never. Empty means auto.
	Color string `yaml:"color,omitempty"`
}

// Load reads the config file under the given home directory.
// A missing file returns ErrNotFound with a zero Config.
func Load(home string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(home, configRelPath)) //nolint:gosec // fixed path under $HOME
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, ErrNotFound
	}
	if err != nil {
		return Config{}, clierr.Wrap(clierr.IOError, err, "reading config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, clierr.Wrap(clierr.ParseError, err, "parsing config")
	}
	switch cfg.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, clierr.Newf(clierr.ParseError, "parsing config: invalid color mode %q", cfg.Color)
	}
	return cfg, nil
}

// Resolve returns the todo file path, by precedence: the --file flag,
// $TODO_FILE, the config file, then ~/todo.txt. An unresolvable home
// directory is fatal; there is nowhere sensible to keep the list.
func Resolve(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if p := os.Getenv(EnvFile); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", clierr.Wrap(clierr.IOError, err, "resolving home directory")
	}

	cfg, err := Load(home)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", err
	}
	if cfg.File != "" {
		return cfg.File, nil
	}
	return filepath.Join(home, defaultFileName), nil
}
