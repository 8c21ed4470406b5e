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

const DefaultListName = "Tasks"

func (s Store) CreateList(ctx context.Context, name, color string) (model.TaskList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.TaskList{}, errors.New("list name is required")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.TaskList{}, err
	}
	defer db.Close()

	now := time.Now().UTC()
	res, err := db.ExecContext(ctx,
		`INSERT INTO lists(name, color, visible, created_at_unixms) VALUES(?, ?, 1, ?)`,
		name, strings.TrimSpace(color), now.UnixMilli())
	if err != nil {
		return model.TaskList{}, fmt.Errorf("create list: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.TaskList{}, err
	}
	return model.TaskList{ID: id, Name: name, Color: strings.TrimSpace(color), Visible: true, CreatedAt: now.Truncate(time.Millisecond)}, nil
}

func (s Store) Lists(ctx context.Context) ([]model.TaskList, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return queryLists(ctx, db)
}

func queryLists(ctx context.Context, db *sql.DB) ([]model.TaskList, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, color, visible, created_at_unixms FROM lists ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TaskList
	for rows.Next() {
		var (
			l       model.TaskList
			visible int
			created int64
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &visible, &created); err != nil {
			return nil, err
		}
		l.Visible = visible != 0
		l.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, l)
	}
	return out, rows.Err()
}

// FindList looks a list up by numeric id or (case-insensitive) name.
func (s Store) FindList(ctx context.Context, ref string) (model.TaskList, error) {
	ref = strings.TrimSpace(ref)
	lists, err := s.Lists(ctx)
	if err != nil {
		return model.TaskList{}, err
	}
	for _, l := range lists {
		if fmt.Sprintf("%d", l.ID) == ref || strings.EqualFold(l.Name, ref) {
			return l, nil
		}
	}
	return model.TaskList{}, fmt.Errorf("list %q: %w", ref, ErrNotFound)
}

// DefaultList returns the named list (or the first list when name is empty),
// creating the default list on a fresh store.
func (s Store) DefaultList(ctx context.Context, name string) (model.TaskList, error) {
	if strings.TrimSpace(name) != "" {
		l, err := s.FindList(ctx, name)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return model.TaskList{}, err
		}
		return s.CreateList(ctx, name, "")
	}
	lists, err := s.Lists(ctx)
	if err != nil {
		return model.TaskList{}, err
	}
	if len(lists) > 0 {
		return lists[0], nil
	}
	return s.CreateList(ctx, DefaultListName, "")
}
