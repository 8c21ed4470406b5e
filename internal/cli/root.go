package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tasks-cli/internal/format"
	"tasks-cli/internal/log"
	"tasks-cli/internal/store"
	"tasks-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string

	cfg *store.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tasks",
		Short:        "Local task lists, grouped by due date (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  tasks

  # Add a task due tomorrow morning
  tasks add "Call the dentist" --due 2025-03-11 --at 09:00

  # Print tasks grouped by due date
  tasks groups --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadConfig()
		if err != nil {
			return writeErr(cmd, fmt.Errorf("config: %w", err))
		}
		app.cfg = cfg
		if err := log.Initialize(logConfig(cfg)); err != nil {
			// Logging is best effort; commands still run.
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
		}
		log.InfoLog.Printf("run %s", cmd.CommandPath())
		return nil
	}

	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		log.Close()
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKS_DIR", ""), "Path to store dir (default: nearest .tasks dir, then ~/.tasks)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKS_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newListsCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newGroupsCmd(app))
	cmd.AddCommand(newStateCmd(app))

	return cmd
}

// logConfig maps the [log] config section onto logger settings. Logs default to
// <config dir>/logs.
func logConfig(cfg *store.Config) log.LogConfig {
	lc := log.DefaultLogConfig()
	if cfg == nil {
		return lc
	}
	c := cfg.Log
	if c.Enabled != nil {
		lc.Enabled = *c.Enabled
	}
	if c.Compress != nil {
		lc.Compress = *c.Compress
	}
	if c.MaxSizeMB > 0 {
		lc.MaxSizeMB = c.MaxSizeMB
	}
	if c.MaxBackups > 0 {
		lc.MaxBackups = c.MaxBackups
	}
	if c.MaxAgeDays > 0 {
		lc.MaxAgeDays = c.MaxAgeDays
	}
	lc.Dir = c.Dir
	if lc.Dir == "" {
		if dir, err := store.ConfigDir(); err == nil {
			lc.Dir = filepath.Join(dir, "logs")
		}
	}
	return lc
}

func runTUI(app *App) error {
	s, err := openStore(app)
	if err != nil {
		return err
	}
	opts := tui.Options{Store: s}
	if app.cfg != nil {
		c := app.cfg.TUI
		opts.Theme = c.Theme
		opts.Layout = c.Layout
		opts.DefaultList = c.DefaultList
		opts.ShowCompleted = c.ShowCompleted
		if c.ShowDetail != nil {
			opts.ShowDetail = *c.ShowDetail
		}
	}
	return tui.Run(opts)
}

// openStore resolves the store directory:
// 1) --dir / TASKS_DIR
// 2) dir in config.toml
// 3) nearest .tasks directory, then ~/.tasks
func openStore(app *App) (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" && app.cfg != nil {
		dir = strings.TrimSpace(app.cfg.Dir)
	}
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
	}
	app.Dir = dir
	s := store.Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return store.Store{}, err
	}
	return s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), format.Envelope{Data: v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		log.WarningLog.Print(err)
	} else {
		log.ErrorLog.Print(err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
