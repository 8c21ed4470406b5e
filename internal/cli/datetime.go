package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tasks-cli/internal/model"
)

var (
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[ T](\d{2}:\d{2})(?::\d{2})?$`)
	reClock    = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// parseDue builds a due value from the --due, --at and --tz flags.
//
// due accepts:
// - today / tomorrow
// - YYYY-MM-DD (all-day unless --at is given)
// - YYYY-MM-DD HH:MM
// - RFC3339 (stored in UTC)
//
// A nil result means no due date.
func parseDue(due, at, tz string, now time.Time) (*model.DateTime, error) {
	due = strings.TrimSpace(due)
	at = strings.TrimSpace(at)
	tz = strings.TrimSpace(tz)
	if due == "" {
		if at != "" {
			// A bare time means today.
			due = "today"
		} else {
			return nil, nil
		}
	}

	var dt *model.DateTime
	switch strings.ToLower(due) {
	case "today":
		dt = &model.DateTime{Date: now.Format("2006-01-02")}
	case "tomorrow":
		dt = &model.DateTime{Date: now.AddDate(0, 0, 1).Format("2006-01-02")}
	default:
		var err error
		if dt, err = parseDateTime(due); err != nil {
			return nil, err
		}
	}

	if at != "" {
		if !reClock.MatchString(at) {
			return nil, fmt.Errorf("invalid time %q (expected HH:MM)", at)
		}
		if len(at) == 4 {
			at = "0" + at
		}
		dt.Time = &at
	}
	if tz != "" {
		if dt.AllDay() {
			return nil, fmt.Errorf("--tz needs a time of day")
		}
		dt.TZ = tz
	}
	return dt, nil
}

func parseDateTime(s string) (*model.DateTime, error) {
	if reDateOnly.MatchString(s) {
		return &model.DateTime{Date: s}, nil
	}
	if m := reDateTime.FindStringSubmatch(s); m != nil {
		hm := m[2]
		return &model.DateTime{Date: m[1], Time: &hm}, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		ts = ts.UTC()
		hm := ts.Format("15:04")
		return &model.DateTime{Date: ts.Format("2006-01-02"), Time: &hm, TZ: "UTC"}, nil
	}
	return nil, fmt.Errorf("invalid date %q (expected today, tomorrow, YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC3339)", s)
}
