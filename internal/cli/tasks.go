package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"tasks-cli/internal/model"
	"tasks-cli/internal/store"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		list        string
		due         string
		at          string
		tz          string
		start       string
		priority    int
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := context.Background()
			now := time.Now()

			dueDT, err := parseDue(due, at, tz, now)
			if err != nil {
				return writeErr(cmd, invalidArgError{arg: "due", reason: err.Error()})
			}
			var startDT *model.DateTime
			if strings.TrimSpace(start) != "" {
				if startDT, err = parseDue(start, "", "", now); err != nil {
					return writeErr(cmd, invalidArgError{arg: "start", reason: err.Error()})
				}
			}

			if list == "" && app.cfg != nil {
				list = app.cfg.TUI.DefaultList
			}
			l, err := s.DefaultList(ctx, list)
			if err != nil {
				return writeErr(cmd, err)
			}

			t, err := s.CreateTask(ctx, store.NewTask{
				ListID:      l.ID,
				Title:       strings.Join(args, " "),
				Description: description,
				Priority:    priority,
				Start:       startDT,
				Due:         dueDT,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, t)
		},
	}

	cmd.Flags().StringVar(&list, "list", "", "List name or id (created if missing)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (today, tomorrow, YYYY-MM-DD, YYYY-MM-DD HH:MM, RFC3339)")
	cmd.Flags().StringVar(&at, "at", "", "Due time of day (HH:MM)")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone of the due time (default: local)")
	cmd.Flags().StringVar(&start, "start", "", "Start date")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority (0 none, 1 low, 2 medium, 3 high)")
	cmd.Flags().StringVar(&description, "description", "", "Description (markdown)")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, id, err := storeAndTaskID(app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := s.GetTask(context.Background(), id)
			if err != nil {
				return writeErr(cmd, taskLookupErr(err, args[0]))
			}
			return writeOut(cmd, app, t)
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, id, err := storeAndTaskID(app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := context.Background()
			if err := s.SetCompleted(ctx, id, !undo); err != nil {
				return writeErr(cmd, taskLookupErr(err, args[0]))
			}
			t, err := s.GetTask(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, t)
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task not completed")
	return cmd
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, id, err := storeAndTaskID(app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.DeleteTask(context.Background(), id); err != nil {
				return writeErr(cmd, taskLookupErr(err, args[0]))
			}
			return writeOut(cmd, app, map[string]any{"id": id, "deleted": true})
		},
	}
}

func storeAndTaskID(app *App, arg string) (store.Store, int64, error) {
	id, err := parseTaskID(arg)
	if err != nil {
		return store.Store{}, 0, err
	}
	s, err := openStore(app)
	if err != nil {
		return store.Store{}, 0, err
	}
	return s, id, nil
}

func taskLookupErr(err error, arg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return errNotFound("task", strings.TrimSpace(arg))
	}
	return err
}
