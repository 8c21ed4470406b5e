package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// postedMsg carries work deferred to the next turn of the update loop.
type postedMsg struct {
	fns []func()
}

// postQueue collects functions posted during an Update call. They are delivered back to
// Update as a postedMsg, so they never run inline with the code that posted them.
type postQueue struct {
	fns []func()
}

func (q *postQueue) Post(fn func()) {
	q.fns = append(q.fns, fn)
}

// flush returns a command delivering the queued functions, or nil when nothing is queued.
func (q *postQueue) flush() tea.Cmd {
	if len(q.fns) == 0 {
		return nil
	}
	fns := q.fns
	q.fns = nil
	return func() tea.Msg { return postedMsg{fns: fns} }
}

// detailObserver receives task selections for the detail pane. The app polls it after
// each update and issues the task load.
type detailObserver struct {
	taskID  int64
	has     bool
	dirty   bool
	wantAdd bool
}

func (o *detailObserver) OnItemSelected(taskID int64) {
	o.taskID = taskID
	o.has = true
	o.dirty = true
}

func (o *detailObserver) OnAddNewTask() {
	o.wantAdd = true
}
