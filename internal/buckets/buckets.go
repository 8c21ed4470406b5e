package buckets

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tasks-cli/internal/model"
)

// Group ids. Fixed kinds use constants; month and year buckets derive their id from the
// calendar period so the same bucket keeps its id across reloads (and across days).
const (
	idNoDue       int64 = 0
	idOverdue     int64 = 1
	idToday       int64 = 2
	idTomorrow    int64 = 3
	idWithin7Days int64 = 4
	idFuture      int64 = 5

	monthIDBase int64 = 1_000
	yearIDBase  int64 = 1_000_000
)

// Range is a half-open [Start, End) due-date window. A nil bound is open.
type Range struct {
	ID    int64
	Kind  model.RangeKind
	Title string
	Start *time.Time
	End   *time.Time
}

func (r Range) contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && !t.Before(*r.End) {
		return false
	}
	return true
}

// Ranges returns the ordered due-date windows relative to now. The no-due range is last.
func Ranges(now time.Time) []Range {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)
	dayAfter := today.AddDate(0, 0, 2)
	week := today.AddDate(0, 0, 8)
	nextYear := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
	yearAfter := time.Date(now.Year()+2, time.January, 1, 0, 0, 0, 0, loc)

	out := []Range{
		{ID: idOverdue, Kind: model.RangeOverdue, Title: "Overdue", End: tptr(today)},
		{ID: idToday, Kind: model.RangeToday, Title: "Due today", Start: tptr(today), End: tptr(tomorrow)},
		{ID: idTomorrow, Kind: model.RangeTomorrow, Title: "Due tomorrow", Start: tptr(tomorrow), End: tptr(dayAfter)},
		{ID: idWithin7Days, Kind: model.RangeWithin7Days, Title: "Due within 7 days", Start: tptr(dayAfter), End: tptr(week)},
	}

	// Remaining months of this year, the first one clipped to the end of the 7-day window.
	cur := week
	for cur.Before(nextYear) {
		monthStart := time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, loc)
		monthEnd := monthStart.AddDate(0, 1, 0)
		out = append(out, Range{
			ID:    monthID(cur.Year(), cur.Month()),
			Kind:  model.RangeMonth,
			Title: "Due in " + cur.Month().String(),
			Start: tptr(cur),
			End:   tptr(monthEnd),
		})
		cur = monthEnd
	}

	yearStart := nextYear
	if week.After(yearStart) {
		yearStart = week
	}
	out = append(out,
		Range{ID: yearIDBase + int64(nextYear.Year()), Kind: model.RangeYear, Title: fmt.Sprintf("Due in %d", nextYear.Year()), Start: tptr(yearStart), End: tptr(yearAfter)},
		Range{ID: idFuture, Kind: model.RangeFuture, Title: "Due in the future", Start: tptr(yearAfter)},
		Range{ID: idNoDue, Kind: model.RangeNoDue, Title: "No due date"},
	)
	return out
}

func monthID(year int, month time.Month) int64 {
	return monthIDBase + int64(year)*12 + int64(month-1)
}

// Classify returns the range a due value falls into. A nil due value belongs to the no-due range.
func Classify(ranges []Range, due *model.DateTime, loc *time.Location) (Range, bool) {
	t, ok := DueInstant(due, loc)
	for _, r := range ranges {
		if r.Kind == model.RangeNoDue {
			if !ok {
				return r, true
			}
			continue
		}
		if ok && r.contains(t) {
			return r, true
		}
	}
	return Range{}, false
}

// GroupTasks buckets tasks by due date and returns the non-empty groups in display order,
// together with each group's tasks keyed by group id.
func GroupTasks(now time.Time, tasks []model.Task) ([]model.Group, map[int64][]model.Task) {
	ranges := Ranges(now)
	byID := map[int64][]model.Task{}
	for _, t := range tasks {
		r, ok := Classify(ranges, t.Due, now.Location())
		if !ok {
			continue
		}
		byID[r.ID] = append(byID[r.ID], t)
	}

	var groups []model.Group
	for _, r := range ranges {
		ts := byID[r.ID]
		if len(ts) == 0 {
			continue
		}
		sortTasks(ts, now.Location())
		byID[r.ID] = ts
		groups = append(groups, model.Group{
			ID:    r.ID,
			Kind:  r.Kind,
			Title: r.Title,
			Start: r.Start,
			End:   r.End,
			Count: len(ts),
		})
	}
	return groups, byID
}

// sortTasks orders a bucket by due instant, then priority (higher first), then title.
func sortTasks(ts []model.Task, loc *time.Location) {
	sort.SliceStable(ts, func(i, j int) bool {
		a, aok := DueInstant(ts[i].Due, loc)
		b, bok := DueInstant(ts[j].Due, loc)
		if aok && bok && !a.Equal(b) {
			return a.Before(b)
		}
		if ts[i].Priority != ts[j].Priority {
			return ts[i].Priority > ts[j].Priority
		}
		if ts[i].Title != ts[j].Title {
			return strings.ToLower(ts[i].Title) < strings.ToLower(ts[j].Title)
		}
		return ts[i].ID < ts[j].ID
	})
}

// DueInstant resolves a DateTime to an instant. All-day values resolve to midnight in loc;
// timed values use their own zone when set.
func DueInstant(dt *model.DateTime, loc *time.Location) (time.Time, bool) {
	if dt == nil || strings.TrimSpace(dt.Date) == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if dt.AllDay() {
		d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dt.Date), loc)
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	}
	zone := loc
	if tz := strings.TrimSpace(dt.TZ); tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			zone = l
		}
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(dt.Date)+" "+strings.TrimSpace(*dt.Time), zone)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}

func tptr(t time.Time) *time.Time { return &t }
