package cli

import (
	"context"

	"tasks-cli/internal/model"
	"tasks-cli/internal/store"

	"github.com/spf13/cobra"
)

type groupOut struct {
	model.Group
	Tasks []model.Child `json:"tasks"`
}

func newGroupsCmd(app *App) *cobra.Command {
	var completed bool

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Show tasks grouped by due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := context.Background()
			src := store.Source{Store: s, IncludeCompleted: completed}
			groups, err := src.LoadGroups(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]groupOut, 0, len(groups))
			for _, g := range groups {
				kids, err := src.LoadChildren(ctx, g.ID)
				if err != nil {
					return writeErr(cmd, err)
				}
				out = append(out, groupOut{Group: g, Tasks: kids})
			}
			return writeOut(cmd, app, out)
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "Include completed tasks")
	return cmd
}
