package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileIsZero(t *testing.T) {
	t.Setenv("TASKS_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Dir != "" || cfg.TUI.Theme != "" || cfg.Log.Enabled != nil {
		t.Fatalf("expected zero config, got %#v", cfg)
	}
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKS_CONFIG_DIR", dir)

	body := `
dir = "/tmp/my-tasks"

[tui]
theme = "dark"
show_detail = false
default_list = "Work"

[log]
enabled = false
max_size_mb = 2
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Dir != "/tmp/my-tasks" || cfg.TUI.Theme != "dark" || cfg.TUI.DefaultList != "Work" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.TUI.ShowDetail == nil || *cfg.TUI.ShowDetail {
		t.Fatalf("expected show_detail=false, got %v", cfg.TUI.ShowDetail)
	}
	if cfg.Log.Enabled == nil || *cfg.Log.Enabled || cfg.Log.MaxSizeMB != 2 {
		t.Fatalf("unexpected log config: %#v", cfg.Log)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("TASKS_CONFIG_DIR", t.TempDir())

	in := &Config{Dir: "/x", TUI: TUIConfig{Theme: "light", ShowCompleted: true}}
	if err := SaveConfig(in); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	out, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out.Dir != "/x" || out.TUI.Theme != "light" || !out.TUI.ShowCompleted {
		t.Fatalf("roundtrip mismatch: %#v", out)
	}
}
