package tui

import (
	"time"

	"tasks-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Store store.Store

	Theme         string
	Layout        string
	DefaultList   string
	ShowDetail    bool
	ShowCompleted bool

	// Now overrides the clock used for due-date grouping.
	Now func() time.Time
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
