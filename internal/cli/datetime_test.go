package cli

import (
	"testing"
	"time"
)

func TestParseDue(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 12, 31, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		due, at  string
		tz       string
		wantDate string
		wantTime string
		wantTZ   string
		wantNil  bool
		wantErr  bool
	}{
		{name: "empty", wantNil: true},
		{name: "date only", due: "2026-02-03", wantDate: "2026-02-03"},
		{name: "date and at", due: "2026-02-03", at: "7:05", wantDate: "2026-02-03", wantTime: "07:05"},
		{name: "inline time", due: "2026-02-03 18:00", wantDate: "2026-02-03", wantTime: "18:00"},
		{name: "tomorrow crosses the year", due: "tomorrow", wantDate: "2026-01-01"},
		{name: "bare at means today", at: "16:30", wantDate: "2025-12-31", wantTime: "16:30"},
		{name: "rfc3339 stored in utc", due: "2026-02-03T10:00:00+02:00", wantDate: "2026-02-03", wantTime: "08:00", wantTZ: "UTC"},
		{name: "zone with time", due: "today", at: "09:00", tz: "Europe/Berlin", wantDate: "2025-12-31", wantTime: "09:00", wantTZ: "Europe/Berlin"},
		{name: "zone without time", due: "today", tz: "Europe/Berlin", wantErr: true},
		{name: "bad clock", due: "today", at: "9am", wantErr: true},
		{name: "bad date", due: "soon", wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseDue(tc.due, tc.at, tc.tz, now)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDue: %v", err)
			}
			if tc.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %#v", got)
				}
				return
			}
			gotTime := ""
			if got.Time != nil {
				gotTime = *got.Time
			}
			if got.Date != tc.wantDate || gotTime != tc.wantTime || got.TZ != tc.wantTZ {
				t.Fatalf("parseDue = %s %q %q, want %s %q %q", got.Date, gotTime, got.TZ, tc.wantDate, tc.wantTime, tc.wantTZ)
			}
		})
	}
}
