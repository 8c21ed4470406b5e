package tui

import (
	"context"
	"path/filepath"
	"time"

	"tasks-cli/internal/layout"
	"tasks-cli/internal/liststate"
	"tasks-cli/internal/loader"
	"tasks-cli/internal/log"
	"tasks-cli/internal/model"
	"tasks-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type reloadTickMsg struct{}

type groupsLoadedMsg struct {
	r loader.Result[[]model.Group]
}

type childrenLoadedMsg struct {
	groupID int64
	r       loader.Result[[]model.Child]
}

type taskLoadedMsg struct {
	r loader.Result[*taskDetail]
}

type layoutLoadedMsg struct {
	r loader.Result[layout.Model]
}

// taskChangedMsg reports a finished write from the TUI (create, complete).
type taskChangedMsg struct {
	status string
	err    error
}

type appModel struct {
	ctx   context.Context
	store store.Store
	src   store.Source
	opts  Options

	width  int
	height int

	list       *groupedList
	state      *liststate.State
	reconciler *liststate.Reconciler
	tracker    *liststate.Tracker
	coord      *liststate.Coordinator
	posts      *postQueue
	observer   *detailObserver
	token      *loader.Token

	groupsGen *loader.Generation
	detailGen *loader.Generation

	// rehydrated is true until the first load after restoring persisted state.
	rehydrated bool
	loading    bool

	detail     detailPane
	showDetail bool
	add        addTaskModal

	keys keyMap
	help help.Model

	status          string
	err             error
	lastFingerprint store.Fingerprint
}

func newAppModel(opts Options) appModel {
	s := opts.Store
	m := appModel{
		ctx:        context.Background(),
		store:      s,
		src:        store.Source{Store: s, Now: opts.Now, IncludeCompleted: opts.ShowCompleted},
		opts:       opts,
		list:       newGroupedList(),
		state:      liststate.NewState(),
		reconciler: &liststate.Reconciler{},
		tracker:    &liststate.Tracker{},
		posts:      &postQueue{},
		observer:   &detailObserver{},
		token:      loader.NewToken(),
		groupsGen:  &loader.Generation{},
		detailGen:  &loader.Generation{},
		loading:    true,
		detail:     newDetailPane(layout.Sources{}.Default()),
		showDetail: opts.ShowDetail,
		add:        newAddTaskModal(),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m.coord = liststate.NewCoordinator(m.state, m.tracker, m.reconciler, m.list, m.posts, m.token)
	m.tracker.Register(m.observer)

	if s.HasTUIState() {
		st, err := s.LoadTUIState()
		if err != nil {
			log.WarningLog.Printf("tui state: %v", err)
		} else {
			m.reconciler.Stash(m.state.Restore(st))
			m.rehydrated = true
			if st.ShowDetail != nil {
				m.showDetail = *st.ShowDetail
			}
		}
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.reload(), m.loadLayout(), tickReload())
}

func (m appModel) now() time.Time {
	if m.opts.Now != nil {
		return m.opts.Now()
	}
	return time.Now()
}

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

// reload starts a fresh load of the groups. Expansion is carried across by group id and
// any pending restore is abandoned.
func (m *appModel) reload() tea.Cmd {
	if !m.reconciler.Pending() && len(m.list.groups) > 0 {
		m.reconciler.Stash(liststate.SnapshotExpandedIDs(m.list.groups, m.list.isExpanded))
	}
	m.coord.ReloadStarted()
	m.loading = true
	gen := m.groupsGen.Next()
	return loader.Cmd(m.ctx, m.token, gen, m.src.LoadGroups, func(r loader.Result[[]model.Group]) tea.Msg {
		return groupsLoadedMsg{r: r}
	})
}

func (m *appModel) loadChildren(pos int) tea.Cmd {
	id := m.list.groups[pos].ID
	m.list.inFlight[id] = true
	src := m.src
	return loader.Cmd(m.ctx, m.token, m.groupsGen.Current(), func(ctx context.Context) ([]model.Child, error) {
		return src.LoadChildren(ctx, id)
	}, func(r loader.Result[[]model.Child]) tea.Msg {
		return childrenLoadedMsg{groupID: id, r: r}
	})
}

// requestChildren loads the children of expanded groups that have none yet. While a
// restore waits for its group, only that group is requested so no other group's load
// can overtake it.
func (m *appModel) requestChildren() tea.Cmd {
	if act, ok := m.coord.Pending(); ok && act.Group >= 0 && act.Group < len(m.list.groups) {
		if m.list.needsChildren(act.Group) {
			return m.loadChildren(act.Group)
		}
		return nil
	}
	var cmds []tea.Cmd
	for pos := range m.list.groups {
		if m.list.isExpanded(pos) && m.list.needsChildren(pos) {
			cmds = append(cmds, m.loadChildren(pos))
		}
	}
	return tea.Batch(cmds...)
}

func (m *appModel) loadTask(id int64) tea.Cmd {
	gen := m.detailGen.Next()
	m.detail.loading = true
	m.detail.refresh()
	s := m.store
	return loader.Cmd(m.ctx, m.token, gen, func(ctx context.Context) (*taskDetail, error) {
		return loadTaskDetail(ctx, s, id)
	}, func(r loader.Result[*taskDetail]) tea.Msg {
		return taskLoadedMsg{r: r}
	})
}

func loadTaskDetail(ctx context.Context, s store.Store, id int64) (*taskDetail, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	lists, err := s.Lists(ctx)
	if err != nil {
		return nil, err
	}
	td := &taskDetail{task: t}
	for _, l := range lists {
		if l.ID == t.ListID {
			td.listName = l.Name
			break
		}
	}
	return td, nil
}

// loadLayout resolves the detail pane's field model. Layout files live in
// <store dir>/layouts.
func (m *appModel) loadLayout() tea.Cmd {
	sources := layout.Sources{Dir: filepath.Join(m.store.Dir, "layouts")}
	name := m.opts.Layout
	return loader.Cmd(m.ctx, m.token, 0, func(context.Context) (layout.Model, error) {
		return sources.Resolve(name)
	}, func(r loader.Result[layout.Model]) tea.Msg {
		return layoutLoadedMsg{r: r}
	})
}

func (m *appModel) createTask(title string) tea.Cmd {
	s := m.store
	listName := m.opts.DefaultList
	ctx := m.ctx
	return func() tea.Msg {
		l, err := s.DefaultList(ctx, listName)
		if err != nil {
			return taskChangedMsg{err: err}
		}
		t, err := s.CreateTask(ctx, store.NewTask{ListID: l.ID, Title: title})
		if err != nil {
			return taskChangedMsg{err: err}
		}
		return taskChangedMsg{status: "Added \"" + t.Title + "\" to " + l.Name}
	}
}

func (m *appModel) setCompleted(id int64, done bool) tea.Cmd {
	s := m.store
	ctx := m.ctx
	return func() tea.Msg {
		if err := s.SetCompleted(ctx, id, done); err != nil {
			return taskChangedMsg{err: err}
		}
		if done {
			return taskChangedMsg{status: "Marked done"}
		}
		return taskChangedMsg{status: "Marked not done"}
	}
}

// saveState persists expansion (by group id) and the activated row.
func (m *appModel) saveState() {
	ids := liststate.SnapshotExpandedIDs(m.list.groups, m.list.isExpanded)
	if m.reconciler.Pending() {
		ids = m.reconciler.Stashed()
	}
	st := &store.TUIState{Version: 1}
	m.state.Save(st, ids)
	show := m.showDetail
	st.ShowDetail = &show
	if err := m.store.SaveTUIState(st); err != nil {
		log.ErrorLog.Printf("save tui state: %v", err)
	}
}

// shutdown tears the list down: nothing started before this point may touch it again.
func (m *appModel) shutdown() {
	m.saveState()
	m.token.Expire()
	m.tracker.Detach()
}
