package tui

import (
	"errors"

	"tasks-cli/internal/log"
	"tasks-cli/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.settle())
}

func (m *appModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return nil

	case reloadTickMsg:
		if m.pollBusy() || m.store.Fingerprint().Equal(m.lastFingerprint) {
			return tickReload()
		}
		cmds := []tea.Cmd{m.reload(), tickReload()}
		if m.observer.has {
			cmds = append(cmds, m.loadTask(m.observer.taskID))
		}
		return tea.Batch(cmds...)

	case groupsLoadedMsg:
		return m.applyGroups(msg)

	case childrenLoadedMsg:
		return m.applyChildren(msg)

	case postedMsg:
		for _, fn := range msg.fns {
			fn()
		}
		if act := m.state.Activated(); act.IsSet() {
			m.list.focus(act.Group, act.Child)
		}
		return m.requestChildren()

	case taskLoadedMsg:
		if m.detailGen.Stale(msg.r.Gen) {
			return nil
		}
		if errors.Is(msg.r.Err, store.ErrNotFound) {
			// Deleted elsewhere.
			m.observer.has = false
			m.detail.clear()
			return nil
		}
		if msg.r.Err != nil {
			log.WarningLog.Printf("load task: %v", msg.r.Err)
		}
		m.detail.setDetail(msg.r.Value, msg.r.Err)
		return nil

	case layoutLoadedMsg:
		if msg.r.Err != nil {
			log.WarningLog.Printf("layout %q: %v", m.opts.Layout, msg.r.Err)
			return nil
		}
		m.detail.setFields(msg.r.Value)
		return nil

	case taskChangedMsg:
		if msg.err != nil {
			log.ErrorLog.Printf("write task: %v", msg.err)
			m.status = ""
			m.err = msg.err
			return nil
		}
		m.err = nil
		m.status = msg.status
		cmds := []tea.Cmd{m.reload()}
		if m.observer.has {
			cmds = append(cmds, m.loadTask(m.observer.taskID))
		}
		return tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

// settle runs after every update: it delivers observer requests and flushes posted work
// to the next turn of the loop.
func (m *appModel) settle() tea.Cmd {
	var cmds []tea.Cmd
	if m.observer.dirty {
		m.observer.dirty = false
		cmds = append(cmds, m.loadTask(m.observer.taskID))
	}
	if m.observer.wantAdd {
		m.observer.wantAdd = false
		cmds = append(cmds, m.add.show(m.width))
	}
	cmds = append(cmds, m.posts.flush())
	return tea.Batch(cmds...)
}

func (m *appModel) applyGroups(msg groupsLoadedMsg) tea.Cmd {
	if m.groupsGen.Stale(msg.r.Gen) {
		return nil
	}
	m.loading = false
	m.lastFingerprint = m.store.Fingerprint()
	if msg.r.Err != nil {
		log.ErrorLog.Printf("load groups: %v", msg.r.Err)
		m.err = msg.r.Err
		return nil
	}
	m.err = nil

	m.list.setGroups(msg.r.Value)
	m.reconciler.Apply(m.list.GroupIDs(), m.list.Expand)

	rehydrated := m.rehydrated
	m.rehydrated = false
	m.coord.LoadFinished(rehydrated)
	if act, ok := m.coord.Pending(); ok {
		if !m.list.isExpanded(act.Group) {
			// Positions shifted since the state was saved; the row is not addressable.
			log.WarningLog.Printf("skipping restore: group %d is not expanded", act.Group)
			m.coord.Abandon()
		} else {
			log.InfoLog.Printf("restoring activation group=%d child=%d", act.Group, act.Child)
		}
	}
	return m.requestChildren()
}

// pollBusy reports whether a reload poll must wait: a load is running or a restore
// is still waiting for its children.
func (m *appModel) pollBusy() bool {
	if m.loading || len(m.list.inFlight) > 0 {
		return true
	}
	_, pending := m.coord.Pending()
	return pending
}

func (m *appModel) applyChildren(msg childrenLoadedMsg) tea.Cmd {
	if m.groupsGen.Stale(msg.r.Gen) {
		return nil
	}
	pos := m.list.groupPos(msg.groupID)
	if pos < 0 {
		return nil
	}
	if msg.r.Err != nil {
		log.ErrorLog.Printf("load group %d: %v", msg.groupID, msg.r.Err)
		m.err = msg.r.Err
	}
	m.list.setChildren(msg.groupID, msg.r.Value)
	m.coord.ChildrenLoaded(pos)
	return m.requestChildren()
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.add.open {
		title, cmd := m.add.update(msg)
		if title != "" {
			return tea.Batch(cmd, m.createTask(title))
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.list.move(-1)

	case key.Matches(msg, m.keys.Down):
		m.list.move(1)

	case key.Matches(msg, m.keys.Activate):
		return m.activate()

	case key.Matches(msg, m.keys.Add):
		m.tracker.AddNewTask()

	case key.Matches(msg, m.keys.Complete):
		row, ok := m.list.current()
		if !ok || row.kind != rowChild {
			return nil
		}
		child, ok := m.list.Child(row.group, row.child)
		if !ok || child.TaskID == nil {
			return nil
		}
		return m.setCompleted(*child.TaskID, !child.Completed)

	case key.Matches(msg, m.keys.Reload):
		m.status = ""
		return m.reload()

	case key.Matches(msg, m.keys.Detail):
		m.showDetail = !m.showDetail
		m.resize()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()

	default:
		if m.showDetail {
			var cmd tea.Cmd
			m.detail.vp, cmd = m.detail.vp.Update(msg)
			return cmd
		}
	}
	return nil
}

// activate toggles the group under the cursor, or activates the task row under it.
func (m *appModel) activate() tea.Cmd {
	row, ok := m.list.current()
	if !ok {
		return nil
	}
	if row.kind == rowGroup {
		if m.list.isExpanded(row.group) {
			m.list.collapse(row.group)
			m.state.ClearIfGroup(row.group)
			m.list.focus(row.group, -1)
			return nil
		}
		m.list.Expand(row.group)
		return m.requestChildren()
	}

	child, ok := m.list.Child(row.group, row.child)
	if !ok {
		return nil
	}
	m.state.RecordSelection(row.group, row.child)
	if _, ok := m.tracker.OnChildActivated(row.group, row.child, child); ok && !m.showDetail {
		m.showDetail = true
		m.resize()
	}
	return nil
}
