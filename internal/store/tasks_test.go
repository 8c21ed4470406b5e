package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasks-cli/internal/model"
)

func strPtr(s string) *string { return &s }

func TestCreateGetTask_RoundTripsDateTimes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	l, err := s.DefaultList(ctx, "")
	if err != nil {
		t.Fatalf("DefaultList: %v", err)
	}
	if l.Name != DefaultListName {
		t.Fatalf("expected default list %q, got %q", DefaultListName, l.Name)
	}

	created, err := s.CreateTask(ctx, NewTask{
		ListID:   l.ID,
		Title:    "  Pay rent  ",
		Priority: 2,
		Due:      &model.DateTime{Date: "2025-04-01", Time: strPtr("09:30"), TZ: "UTC"},
		Start:    &model.DateTime{Date: "2025-03-30"},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.Title != "Pay rent" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}

	got, err := s.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Due == nil || got.Due.Date != "2025-04-01" || got.Due.Time == nil || *got.Due.Time != "09:30" || got.Due.TZ != "UTC" {
		t.Fatalf("unexpected due: %#v", got.Due)
	}
	if got.Start == nil || !got.Start.AllDay() {
		t.Fatalf("expected all-day start, got %#v", got.Start)
	}
	if got.Priority != 2 || got.ListID != l.ID {
		t.Fatalf("unexpected task: %#v", got)
	}
}

func TestCreateTask_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	l, err := s.DefaultList(ctx, "")
	if err != nil {
		t.Fatalf("DefaultList: %v", err)
	}

	tests := []struct {
		name string
		in   NewTask
	}{
		{name: "empty title", in: NewTask{ListID: l.ID, Title: " "}},
		{name: "no list", in: NewTask{Title: "x"}},
		{name: "bad date", in: NewTask{ListID: l.ID, Title: "x", Due: &model.DateTime{Date: "04/01/2025"}}},
		{name: "bad time", in: NewTask{ListID: l.ID, Title: "x", Due: &model.DateTime{Date: "2025-04-01", Time: strPtr("25:99")}}},
		{name: "bad zone", in: NewTask{ListID: l.ID, Title: "x", Due: &model.DateTime{Date: "2025-04-01", TZ: "Mars/Olympus"}}},
	}
	for _, tt := range tests {
		if _, err := s.CreateTask(ctx, tt.in); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestCompleteAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	l, err := s.DefaultList(ctx, "")
	if err != nil {
		t.Fatalf("DefaultList: %v", err)
	}
	a, _ := s.CreateTask(ctx, NewTask{ListID: l.ID, Title: "a"})
	b, _ := s.CreateTask(ctx, NewTask{ListID: l.ID, Title: "b"})

	if err := s.SetCompleted(ctx, a.ID, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	open, err := s.ListTasks(ctx, TaskFilter{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(open) != 1 || open[0].ID != b.ID {
		t.Fatalf("expected only b open, got %#v", open)
	}
	all, err := s.ListTasks(ctx, TaskFilter{IncludeCompleted: true})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(all))
	}

	if err := s.DeleteTask(ctx, b.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := s.GetTask(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteTask(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSource_GroupsAndChildren(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	l, err := s.CreateList(ctx, "Work", "#ff0000")
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mk := func(title string, due *model.DateTime) model.Task {
		t.Helper()
		tk, err := s.CreateTask(ctx, NewTask{ListID: l.ID, Title: title, Due: due})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
		return tk
	}
	mk("overdue", &model.DateTime{Date: "2025-03-01"})
	today := mk("today", &model.DateTime{Date: "2025-03-10", Time: strPtr("18:00")})
	mk("someday", nil)

	src := Source{Store: s, Now: func() time.Time { return now }}
	groups, err := src.LoadGroups(ctx)
	if err != nil {
		t.Fatalf("LoadGroups: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %#v", groups)
	}
	if groups[0].Kind != model.RangeOverdue || groups[1].Kind != model.RangeToday || groups[2].Kind != model.RangeNoDue {
		t.Fatalf("unexpected group order: %#v", groups)
	}

	children, err := src.LoadChildren(ctx, groups[1].ID)
	if err != nil {
		t.Fatalf("LoadChildren: %v", err)
	}
	if len(children) != 1 || children[0].TaskID == nil || *children[0].TaskID != today.ID {
		t.Fatalf("unexpected children: %#v", children)
	}
	if children[0].ListColor != "#ff0000" {
		t.Fatalf("expected list color, got %q", children[0].ListColor)
	}

	gone, err := src.LoadChildren(ctx, 999_999)
	if err != nil {
		t.Fatalf("LoadChildren (missing group): %v", err)
	}
	if len(gone) != 0 {
		t.Fatalf("expected no rows for missing group, got %#v", gone)
	}
}
