package store

import (
	"context"
	"time"

	"tasks-cli/internal/buckets"
	"tasks-cli/internal/model"
)

// Source serves the grouped task list: the due-date groups, and per group its task rows.
type Source struct {
	Store            Store
	Now              func() time.Time
	IncludeCompleted bool
}

func (src Source) now() time.Time {
	if src.Now != nil {
		return src.Now()
	}
	return time.Now()
}

// LoadGroups returns the non-empty due-date groups in display order.
func (src Source) LoadGroups(ctx context.Context) ([]model.Group, error) {
	groups, _, _, err := src.load(ctx)
	return groups, err
}

// LoadChildren returns the task rows of the group with the given id. A group that no
// longer exists yields no rows.
func (src Source) LoadChildren(ctx context.Context, groupID int64) ([]model.Child, error) {
	_, byGroup, colors, err := src.load(ctx)
	if err != nil {
		return nil, err
	}
	tasks := byGroup[groupID]
	out := make([]model.Child, 0, len(tasks))
	for _, t := range tasks {
		id := t.ID
		out = append(out, model.Child{
			InstanceID: t.ID,
			TaskID:     &id,
			ListID:     t.ListID,
			Title:      t.Title,
			Due:        t.Due,
			Priority:   t.Priority,
			Completed:  t.Completed,
			ListColor:  colors[t.ListID],
		})
	}
	return out, nil
}

func (src Source) load(ctx context.Context) ([]model.Group, map[int64][]model.Task, map[int64]string, error) {
	db, err := src.Store.openSQLite(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	defer db.Close()

	tasks, err := queryTasks(ctx, db, TaskFilter{IncludeCompleted: src.IncludeCompleted, VisibleOnly: true})
	if err != nil {
		return nil, nil, nil, err
	}
	lists, err := queryLists(ctx, db)
	if err != nil {
		return nil, nil, nil, err
	}
	colors := make(map[int64]string, len(lists))
	for _, l := range lists {
		colors[l.ID] = l.Color
	}
	groups, byGroup := buckets.GroupTasks(src.now(), tasks)
	return groups, byGroup, colors, nil
}
