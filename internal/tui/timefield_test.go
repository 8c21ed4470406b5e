package tui

import (
	"testing"
	"time"

	"tasks-cli/internal/model"
)

func TestFormatTimeField(t *testing.T) {
	t.Parallel()
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name   string
		dt     *model.DateTime
		loc    *time.Location
		want   string
		wantOK bool
	}{
		{name: "nil hides the field", dt: nil, loc: time.UTC, want: "", wantOK: false},
		{name: "empty date hides the field", dt: &model.DateTime{}, loc: time.UTC, want: "", wantOK: false},
		{name: "all day", dt: &model.DateTime{Date: "2025-01-05"}, loc: time.UTC, want: "January 5, 2025", wantOK: true},
		{name: "timed", dt: &model.DateTime{Date: "2025-01-05", Time: strPtr("14:30"), TZ: "UTC"}, loc: time.UTC, want: "January 5, 2025 14:30", wantOK: true},
		{name: "timed shown in viewer zone", dt: &model.DateTime{Date: "2025-01-05", Time: strPtr("14:30"), TZ: "UTC"}, loc: ny, want: "January 5, 2025 09:30", wantOK: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := formatTimeField(tc.dt, tc.loc)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("formatTimeField = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestFormatRowDue(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		dt          *model.DateTime
		want        string
		wantOverdue bool
	}{
		{name: "later today shows the time", dt: &model.DateTime{Date: "2025-03-10", Time: strPtr("15:45"), TZ: "UTC"}, want: "15:45"},
		{name: "earlier today is overdue", dt: &model.DateTime{Date: "2025-03-10", Time: strPtr("08:00"), TZ: "UTC"}, want: "08:00", wantOverdue: true},
		{name: "all day today is not overdue", dt: &model.DateTime{Date: "2025-03-10"}, want: "Today"},
		{name: "yesterday", dt: &model.DateTime{Date: "2025-03-09"}, want: "Mar 9, 2025", wantOverdue: true},
		{name: "next year", dt: &model.DateTime{Date: "2026-01-02", Time: strPtr("09:00"), TZ: "UTC"}, want: "Jan 2, 2026"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, overdue, ok := formatRowDue(tc.dt, now)
			if !ok || got != tc.want || overdue != tc.wantOverdue {
				t.Fatalf("formatRowDue = (%q, %v, %v), want (%q, %v, true)", got, overdue, ok, tc.want, tc.wantOverdue)
			}
		})
	}

	if _, _, ok := formatRowDue(nil, now); ok {
		t.Fatalf("expected nil due to render nothing")
	}
}
