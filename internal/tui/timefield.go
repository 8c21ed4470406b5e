package tui

import (
	"time"

	"tasks-cli/internal/buckets"
	"tasks-cli/internal/model"
)

const (
	longDateLayout   = "January 2, 2006"
	mediumDateLayout = "Jan 2, 2006"
	clockLayout      = "15:04"
)

// formatTimeField renders a date/time detail value. ok is false when there is nothing
// to show and the field should be hidden.
func formatTimeField(dt *model.DateTime, loc *time.Location) (string, bool) {
	if loc == nil {
		loc = time.Local
	}
	at, ok := buckets.DueInstant(dt, loc)
	if !ok {
		return "", false
	}
	if dt.AllDay() {
		return at.Format(longDateLayout), true
	}
	return at.In(loc).Format(longDateLayout + " " + clockLayout), true
}

// formatRowDue renders the compact due value shown in a task row: the time of day when
// the task is due today, the date otherwise. overdue reports whether the value lies
// before now.
func formatRowDue(dt *model.DateTime, now time.Time) (text string, overdue bool, ok bool) {
	loc := now.Location()
	at, ok := buckets.DueInstant(dt, loc)
	if !ok {
		return "", false, false
	}
	local := at.In(loc)
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	if dt.AllDay() {
		overdue = local.Before(today)
	} else {
		overdue = local.Before(now)
	}

	ly, lm, ld := local.Date()
	if ly == y && lm == m && ld == d {
		if dt.AllDay() {
			return "Today", overdue, true
		}
		return local.Format(clockLayout), overdue, true
	}
	return local.Format(mediumDateLayout), overdue, true
}

func renderRowDue(dt *model.DateTime, now time.Time) string {
	text, overdue, ok := formatRowDue(dt, now)
	if !ok {
		return ""
	}
	return styleDue(overdue).Render(text)
}
