package store

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

const (
	dirName        = ".tasks"
	sqliteFileName = "tasks.sqlite"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	Dir string
}

func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, dirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the store directory: a .tasks directory in the working directory or
// one of its parents, otherwise ~/.tasks.
func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

// Fingerprint identifies the committed contents of the database. Every connection
// creates an empty -wal file while it is open, so the WAL counts only by size: a
// read-only open leaves the fingerprint unchanged.
type Fingerprint struct {
	DBModTime time.Time
	DBSize    int64
	WALSize   int64
}

// Fingerprint stats the database files. The TUI polls it to pick up writes made by CLI
// commands in another terminal.
func (s Store) Fingerprint() Fingerprint {
	var fp Fingerprint
	if st, err := os.Stat(s.sqlitePath()); err == nil {
		fp.DBModTime = st.ModTime()
		fp.DBSize = st.Size()
	}
	if st, err := os.Stat(s.sqlitePath() + "-wal"); err == nil {
		fp.WALSize = st.Size()
	}
	return fp
}

func (f Fingerprint) Equal(o Fingerprint) bool {
	return f.DBModTime.Equal(o.DBModTime) && f.DBSize == o.DBSize && f.WALSize == o.WALSize
}
