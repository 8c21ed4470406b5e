package model

import "time"

type TaskList struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
}

type Task struct {
	ID     int64 `json:"id"`
	ListID int64 `json:"listId"`

	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    int       `json:"priority"`
	Start       *DateTime `json:"start,omitempty"`
	Due         *DateTime `json:"due,omitempty"`
	Completed   bool      `json:"completed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateTime represents an optional time attached to a date.
// If Time is nil, the value is all-day (no time semantics).
type DateTime struct {
	Date string  `json:"date"`           // YYYY-MM-DD
	Time *string `json:"time,omitempty"` // HH:MM
	TZ   string  `json:"tz,omitempty"`   // IANA zone; empty = local
}

func (dt DateTime) AllDay() bool {
	return dt.Time == nil || *dt.Time == ""
}

// RangeKind identifies a due-date bucket.
type RangeKind int

const (
	RangeNoDue RangeKind = iota
	RangeOverdue
	RangeToday
	RangeTomorrow
	RangeWithin7Days
	RangeMonth
	RangeYear
	RangeFuture
)

// Group is one due-date bucket of the task list. ID is stable across reloads,
// its position in the loaded sequence is not.
type Group struct {
	ID    int64      `json:"id"`
	Kind  RangeKind  `json:"kind"`
	Title string     `json:"title"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
	Count int        `json:"count"`
}

// Child is one task row inside a group.
// TaskID is nil when the row does not resolve to a task.
type Child struct {
	InstanceID int64     `json:"instanceId"`
	TaskID     *int64    `json:"taskId,omitempty"`
	ListID     int64     `json:"listId"`
	Title      string    `json:"title"`
	Due        *DateTime `json:"due,omitempty"`
	Priority   int       `json:"priority"`
	Completed  bool      `json:"completed"`
	ListColor  string    `json:"listColor,omitempty"`
}
