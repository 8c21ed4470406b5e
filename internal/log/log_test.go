package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogFilePath(t *testing.T) {
	cfg := DefaultLogConfig()
	cfg.Dir = "/custom/log/dir"
	path, err := LogFilePath(cfg)
	if err != nil {
		t.Fatalf("LogFilePath: %v", err)
	}
	if path != filepath.Join("/custom/log/dir", logFileName) {
		t.Errorf("unexpected path %s", path)
	}

	cfg.Dir = ""
	dir, err := LogDir(cfg)
	if err != nil {
		t.Fatalf("LogDir: %v", err)
	}
	if !strings.Contains(dir, ".tasks"+string(filepath.Separator)+"logs") {
		t.Errorf("LogDir should return default log dir, got %s", dir)
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultLogConfig()
	cfg.Dir = dir
	cfg.Compress = false

	if err := Initialize(cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	InfoLog.Printf("hello %d", 42)
	Close()

	b, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "INFO: ") || !strings.Contains(string(b), "hello 42") {
		t.Errorf("unexpected log contents: %q", string(b))
	}
}

func TestInitialize_DisabledWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultLogConfig()
	cfg.Enabled = false
	cfg.Dir = dir

	if err := Initialize(cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	ErrorLog.Printf("dropped")
	Close()

	if _, err := os.Stat(filepath.Join(dir, logFileName)); !os.IsNotExist(err) {
		t.Errorf("expected no log file, got err=%v", err)
	}
}
