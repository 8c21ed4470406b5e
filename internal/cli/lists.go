package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func newListsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Show task lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			lists, err := s.Lists(context.Background())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, lists)
		},
	}
	cmd.AddCommand(newListsCreateCmd(app))
	return cmd
}

func newListsCreateCmd(app *App) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a task list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			l, err := s.CreateList(context.Background(), strings.TrimSpace(args[0]), strings.TrimSpace(color))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, l)
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "List color (terminal color: 0-255 or #rrggbb)")
	return cmd
}
