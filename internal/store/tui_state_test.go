package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTUIState_SaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}

	// Missing file => default state.
	st0, err := s.LoadTUIState()
	if err != nil {
		t.Fatalf("LoadTUIState: %v", err)
	}
	if st0 == nil || st0.Version != 1 {
		t.Fatalf("expected default Version=1; got %#v", st0)
	}
	if s.HasTUIState() {
		t.Fatalf("expected no state file before save")
	}

	g, c := 2, 1
	show := true
	want := &TUIState{
		Version:          1,
		ExpandedGroupIDs: []int64{2, 1_024_305},
		ActivatedGroup:   &g,
		ActivatedChild:   &c,
		ShowDetail:       &show,
	}

	if err := s.SaveTUIState(want); err != nil {
		t.Fatalf("SaveTUIState: %v", err)
	}

	got, err := s.LoadTUIState()
	if err != nil {
		t.Fatalf("LoadTUIState (after save): %v", err)
	}

	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
	if !s.HasTUIState() {
		t.Fatalf("expected state file after save")
	}
}

func TestTUIState_CorruptFileTreatedAsMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}
	if err := os.WriteFile(filepath.Join(dir, tuiStateFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	st, err := s.LoadTUIState()
	if err != nil {
		t.Fatalf("LoadTUIState: %v", err)
	}
	if st.ActivatedGroup != nil || st.ActivatedChild != nil || len(st.ExpandedGroupIDs) != 0 {
		t.Fatalf("expected empty state, got %#v", st)
	}
}

func TestTUIState_Reset(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	if err := s.ResetTUIState(); err != nil {
		t.Fatalf("reset on missing file: %v", err)
	}
	if err := s.SaveTUIState(&TUIState{ExpandedGroupIDs: []int64{1}}); err != nil {
		t.Fatalf("SaveTUIState: %v", err)
	}
	if err := s.ResetTUIState(); err != nil {
		t.Fatalf("ResetTUIState: %v", err)
	}
	if s.HasTUIState() {
		t.Fatalf("expected state file removed")
	}
}
