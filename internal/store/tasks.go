package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tasks-cli/internal/model"
)

type NewTask struct {
	ListID      int64
	Title       string
	Description string
	Priority    int
	Start       *model.DateTime
	Due         *model.DateTime
}

type TaskFilter struct {
	ListID           int64 // 0 = all lists
	IncludeCompleted bool
	VisibleOnly      bool
}

const taskColumns = `t.id, t.list_id, t.title, t.description, t.priority,
	t.start_date, t.start_time, t.start_tz, t.due_date, t.due_time, t.due_tz,
	t.completed, t.created_at_unixms, t.updated_at_unixms`

func (s Store) CreateTask(ctx context.Context, in NewTask) (model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, errors.New("task title is required")
	}
	if in.ListID == 0 {
		return model.Task{}, errors.New("task list is required")
	}
	if err := validateDateTime(in.Start); err != nil {
		return model.Task{}, fmt.Errorf("start: %w", err)
	}
	if err := validateDateTime(in.Due); err != nil {
		return model.Task{}, fmt.Errorf("due: %w", err)
	}

	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Task{}, err
	}
	defer db.Close()

	now := time.Now().UTC().Truncate(time.Millisecond)
	sd, st, sz := dateTimeColumns(in.Start)
	dd, dt, dz := dateTimeColumns(in.Due)
	res, err := db.ExecContext(ctx,
		`INSERT INTO tasks(list_id, title, description, priority,
			start_date, start_time, start_tz, due_date, due_time, due_tz,
			completed, created_at_unixms, updated_at_unixms)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		in.ListID, title, in.Description, in.Priority,
		sd, st, sz, dd, dt, dz,
		now.UnixMilli(), now.UnixMilli())
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, err
	}
	return model.Task{
		ID:          id,
		ListID:      in.ListID,
		Title:       title,
		Description: in.Description,
		Priority:    in.Priority,
		Start:       in.Start,
		Due:         in.Due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s Store) GetTask(ctx context.Context, id int64) (model.Task, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Task{}, err
	}
	defer db.Close()

	row := db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks t WHERE t.id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return t, err
}

func (s Store) ListTasks(ctx context.Context, f TaskFilter) ([]model.Task, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return queryTasks(ctx, db, f)
}

func queryTasks(ctx context.Context, db *sql.DB, f TaskFilter) ([]model.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks t JOIN lists l ON l.id = t.list_id WHERE 1=1`
	var args []any
	if f.ListID != 0 {
		q += ` AND t.list_id = ?`
		args = append(args, f.ListID)
	}
	if !f.IncludeCompleted {
		q += ` AND t.completed = 0`
	}
	if f.VisibleOnly {
		q += ` AND l.visible = 1`
	}
	q += ` ORDER BY t.id`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s Store) SetCompleted(ctx context.Context, id int64, done bool) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	v := 0
	if done {
		v = 1
	}
	res, err := db.ExecContext(ctx, `UPDATE tasks SET completed = ?, updated_at_unixms = ? WHERE id = ?`, v, time.Now().UTC().UnixMilli(), id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func (s Store) DeleteTask(ctx context.Context, id int64) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(r rowScanner) (model.Task, error) {
	var (
		t                  model.Task
		sd, st, sz         sql.NullString
		dd, dt, dz         sql.NullString
		completed          int
		created, updatedMs int64
	)
	if err := r.Scan(&t.ID, &t.ListID, &t.Title, &t.Description, &t.Priority,
		&sd, &st, &sz, &dd, &dt, &dz,
		&completed, &created, &updatedMs); err != nil {
		return model.Task{}, err
	}
	t.Start = dateTimeFromColumns(sd, st, sz)
	t.Due = dateTimeFromColumns(dd, dt, dz)
	t.Completed = completed != 0
	t.CreatedAt = time.UnixMilli(created).UTC()
	t.UpdatedAt = time.UnixMilli(updatedMs).UTC()
	return t, nil
}

func dateTimeColumns(dt *model.DateTime) (date, clock, tz sql.NullString) {
	if dt == nil || strings.TrimSpace(dt.Date) == "" {
		return
	}
	date = sql.NullString{String: strings.TrimSpace(dt.Date), Valid: true}
	if !dt.AllDay() {
		clock = sql.NullString{String: strings.TrimSpace(*dt.Time), Valid: true}
	}
	if strings.TrimSpace(dt.TZ) != "" {
		tz = sql.NullString{String: strings.TrimSpace(dt.TZ), Valid: true}
	}
	return
}

func dateTimeFromColumns(date, clock, tz sql.NullString) *model.DateTime {
	if !date.Valid || strings.TrimSpace(date.String) == "" {
		return nil
	}
	out := &model.DateTime{Date: date.String}
	if clock.Valid && strings.TrimSpace(clock.String) != "" {
		c := clock.String
		out.Time = &c
	}
	if tz.Valid {
		out.TZ = tz.String
	}
	return out
}

func validateDateTime(dt *model.DateTime) error {
	if dt == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(dt.Date)); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", dt.Date)
	}
	if !dt.AllDay() {
		if _, err := time.Parse("15:04", strings.TrimSpace(*dt.Time)); err != nil {
			return fmt.Errorf("invalid time %q (want HH:MM)", *dt.Time)
		}
	}
	if tz := strings.TrimSpace(dt.TZ); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("invalid time zone %q", tz)
		}
	}
	return nil
}
