package store

import (
	"context"
	"testing"
)

func TestFingerprint_IgnoresReadersAndSeesWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	l, err := s.DefaultList(ctx, "")
	if err != nil {
		t.Fatalf("DefaultList: %v", err)
	}
	before := s.Fingerprint()

	// A reader holding the database open must not look like a write.
	reader, err := s.openSQLite(ctx)
	if err != nil {
		t.Fatalf("openSQLite: %v", err)
	}
	defer reader.Close()
	if _, err := s.Lists(ctx); err != nil {
		t.Fatalf("Lists: %v", err)
	}
	if during := s.Fingerprint(); !during.Equal(before) {
		t.Fatalf("read changed the fingerprint: %+v -> %+v", before, during)
	}

	// With the reader still open the write stays in the WAL.
	if _, err := s.CreateTask(ctx, NewTask{ListID: l.ID, Title: "Water plants"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if after := s.Fingerprint(); after.Equal(before) {
		t.Fatalf("write did not change the fingerprint: %+v", after)
	}
}
