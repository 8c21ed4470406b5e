package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const tuiStateFileName = "tui_state.json"

// TUIState stores small, user-facing UI state for restoring the task list on relaunch.
//
// This file lives inside the store directory so state is naturally scoped per store.
// It is "best effort": callers should tolerate missing/invalid data.
type TUIState struct {
	Version int `json:"version"`

	// ExpandedGroupIDs are due-date group ids, never positions.
	ExpandedGroupIDs []int64 `json:"expandedGroupIds,omitempty"`

	// Activated row positions. Absent means no prior selection.
	ActivatedGroup *int `json:"activatedGroup,omitempty"`
	ActivatedChild *int `json:"activatedChild,omitempty"`

	ShowDetail *bool `json:"showDetail,omitempty"`
}

func (s Store) tuiStatePath() string {
	return filepath.Join(s.Dir, tuiStateFileName)
}

func (s Store) LoadTUIState() (*TUIState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &TUIState{Version: 1}, nil
	}
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.tuiStatePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &TUIState{Version: 1}, nil
		}
		return nil, err
	}
	var st TUIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return &TUIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

// HasTUIState reports whether a state file exists. A fresh store has nothing to restore.
func (s Store) HasTUIState() bool {
	if strings.TrimSpace(s.Dir) == "" {
		return false
	}
	_, err := os.Stat(s.tuiStatePath())
	return err == nil
}

func (s Store) SaveTUIState(st *TUIState) error {
	if st == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	path := s.tuiStatePath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write tui state: %w", err)
	}
	return os.Rename(tmp, path)
}

// ResetTUIState removes the state file. A missing file is not an error.
func (s Store) ResetTUIState() error {
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	err := os.Remove(s.tuiStatePath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
