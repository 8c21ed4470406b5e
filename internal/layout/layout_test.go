package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_FallsBackToDefault(t *testing.T) {
	s := Sources{}
	m, err := s.Resolve("does-not-exist")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if m.Name != DefaultModelName {
		t.Fatalf("expected default model, got %q", m.Name)
	}

	m, err = s.Resolve("compact")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if m.Name != "compact" || len(m.Fields) != 2 {
		t.Fatalf("unexpected compact model: %#v", m)
	}
}

func TestResolve_FileOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	body := `
[[fields]]
key = "due"
label = "When"
kind = "time"

[[fields]]
key = "title"
label = "What"
`
	if err := os.WriteFile(filepath.Join(dir, "default.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := Sources{Dir: dir}.Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if m.Name != DefaultModelName || len(m.Fields) != 2 {
		t.Fatalf("unexpected model: %#v", m)
	}
	if m.Fields[0].Label != "When" || m.Fields[1].Kind != FieldText {
		t.Fatalf("unexpected fields: %#v", m.Fields)
	}
}

func TestResolve_InvalidFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("[[fields]]\nlabel = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := (Sources{Dir: dir}).Resolve("broken"); err == nil {
		t.Fatalf("expected error for field without key")
	}
}
