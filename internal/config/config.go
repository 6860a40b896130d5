// Package config reads the optional launcher settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the user editable settings stored in config.toml. Everything
// here is a default; command-line flags win.
type Config struct {
	Executable string      `toml:"executable"`
	Wrapper    string      `toml:"wrapper"`
	Launch     LaunchBlock `toml:"launch"`
}

// LaunchBlock tunes the arguments handed to the engine.
type LaunchBlock struct {
	InitScript string `toml:"init_script"`
	BugReport  bool   `toml:"bug_report"`
}

func (l *LaunchBlock) applyDefaults() {
	if l == nil {
		return
	}
	if l.InitScript == "" {
		l.InitScript = "init.lua"
	}
}

// ErrMissingInitScript indicates the config blanked out the init script.
var ErrMissingInitScript = errors.New("config.launch.init_script must be set")

// Default returns a baseline configuration.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.Launch.applyDefaults()
}

// Validate ensures the configuration can drive a launch.
func (c Config) Validate() error {
	if c.Launch.InitScript == "" {
		return ErrMissingInitScript
	}
	return nil
}

// DefaultPath returns the conventional config location, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	if override := os.Getenv("FAF_REPLAY_CONFIG"); override != "" {
		return override
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "faf-replay", "config.toml")
}

// Load reads configuration from disk. A missing file returns a default config.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
