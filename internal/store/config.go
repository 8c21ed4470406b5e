package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the user configuration in ~/.tasks/config.toml. Every field is optional.
type Config struct {
	// Dir overrides store directory discovery.
	Dir string `toml:"dir,omitempty"`

	TUI TUIConfig `toml:"tui"`
	Log LogConfig `toml:"log"`
}

type TUIConfig struct {
	// Theme is light|dark|auto.
	Theme string `toml:"theme,omitempty"`
	// ShowDetail opens the detail pane by default (persisted TUI state wins).
	ShowDetail *bool `toml:"show_detail,omitempty"`
	// DefaultList receives tasks created from the TUI.
	DefaultList string `toml:"default_list,omitempty"`
	// ShowCompleted includes completed tasks in the grouped list.
	ShowCompleted bool `toml:"show_completed,omitempty"`
	// Layout names the detail pane field model (see <store dir>/layouts).
	Layout string `toml:"layout,omitempty"`
}

type LogConfig struct {
	Enabled    *bool  `toml:"enabled,omitempty"`
	Dir        string `toml:"dir,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb,omitempty"`
	MaxBackups int    `toml:"max_backups,omitempty"`
	MaxAgeDays int    `toml:"max_age_days,omitempty"`
	Compress   *bool  `toml:"compress,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.tasks).
	if v := strings.TrimSpace(os.Getenv("TASKS_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tasks"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file. A missing or empty file yields the zero Config.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return loadConfigFromPath(path)
}

func loadConfigFromPath(path string) (*Config, error) {
	cfg := &Config{}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return cfg, nil
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.toml.*.tmp", path, b, 0o600)
}
