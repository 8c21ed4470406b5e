package cli

import (
	"github.com/spf13/cobra"
)

func newStateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the saved TUI state (expanded groups, activated row)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := s.LoadTUIState()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, st)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the saved TUI state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.ResetTUIState(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"reset": true})
		},
	})
	return cmd
}
