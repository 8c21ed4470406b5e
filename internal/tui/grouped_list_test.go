package tui

import (
	"testing"

	"tasks-cli/internal/model"
)

func idPtr(i int64) *int64 { return &i }

func TestGroupedList_RowsFollowExpansion(t *testing.T) {
	t.Parallel()
	l := newGroupedList()
	l.setGroups([]model.Group{{ID: 2, Title: "Due today"}, {ID: 0, Title: "No due date"}})
	l.setChildren(2, []model.Child{{TaskID: idPtr(10)}, {TaskID: idPtr(11)}})

	if got := len(l.rows()); got != 2 {
		t.Fatalf("expected only headers while collapsed, got %d rows", got)
	}

	l.Expand(0)
	rows := l.rows()
	if len(rows) != 4 || rows[1].kind != rowChild || rows[3].kind != rowGroup || rows[3].group != 1 {
		t.Fatalf("unexpected rows: %#v", rows)
	}

	if !l.focus(0, 1) || l.cursor != 2 {
		t.Fatalf("expected focus on second child, cursor=%d", l.cursor)
	}
	l.collapse(0)
	if l.cursor != 1 {
		t.Fatalf("expected cursor clamped to last row, got %d", l.cursor)
	}
	if l.focus(0, 1) {
		t.Fatalf("collapsed children must not be focusable")
	}
}

func TestGroupedList_ChildBoundsAndReset(t *testing.T) {
	t.Parallel()
	l := newGroupedList()
	l.setGroups([]model.Group{{ID: 2}})

	if _, ok := l.Child(0, 0); ok {
		t.Fatalf("expected no child before load")
	}
	if !l.needsChildren(0) {
		t.Fatalf("expected group to need children")
	}
	l.inFlight[2] = true
	if l.needsChildren(0) {
		t.Fatalf("in-flight group must not be requested twice")
	}
	l.setChildren(2, []model.Child{{TaskID: idPtr(7)}})
	if c, ok := l.Child(0, 0); !ok || *c.TaskID != 7 {
		t.Fatalf("unexpected child: %#v ok=%v", c, ok)
	}
	if _, ok := l.Child(1, 0); ok {
		t.Fatalf("out-of-range group must miss")
	}

	l.Expand(0)
	l.setGroups([]model.Group{{ID: 3}, {ID: 2}})
	if l.isExpanded(0) || l.isExpanded(1) || l.loaded[2] {
		t.Fatalf("setGroups must reset expansion and children")
	}
	if got := l.GroupIDs(); len(got) != 2 || got[0] != 3 || got[1] != 2 {
		t.Fatalf("unexpected ids: %v", got)
	}
}
