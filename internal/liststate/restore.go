package liststate

import (
	"fmt"

	"tasks-cli/internal/model"
)

// Phase is the restore coordinator's progress.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingChildLoad
	PhaseRestored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingChildLoad:
		return "awaiting-child-load"
	case PhaseRestored:
		return "restored"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// View is the live list the coordinator restores into.
type View interface {
	GroupIDs() []int64
	Expand(pos int)
	Child(groupPos, childPos int) (model.Child, bool)
}

// Poster runs fn on a later turn of the control loop.
type Poster interface {
	Post(fn func())
}

// Owner reports whether the list that started an operation is still alive.
type Owner interface {
	Alive() bool
}

// Coordinator re-selects a restored activation once the activated group's children
// have loaded. Children load lazily, so the row cannot be selected any earlier.
type Coordinator struct {
	phase   Phase
	pending Activation
	epoch   uint64

	state      *State
	tracker    *Tracker
	reconciler *Reconciler
	view       View
	poster     Poster
	owner      Owner
}

// NewCoordinator returns an idle coordinator restoring into view.
func NewCoordinator(state *State, tracker *Tracker, reconciler *Reconciler, view View, poster Poster, owner Owner) *Coordinator {
	return &Coordinator{
		phase:      PhaseIdle,
		pending:    none(),
		state:      state,
		tracker:    tracker,
		reconciler: reconciler,
		view:       view,
		poster:     poster,
		owner:      owner,
	}
}

// Phase returns the current restore phase.
func (c *Coordinator) Phase() Phase { return c.phase }

// Pending returns the activation awaiting its children, if any.
func (c *Coordinator) Pending() (Activation, bool) {
	if c.phase != PhaseAwaitingChildLoad {
		return none(), false
	}
	return c.pending, true
}

// ReloadStarted abandons any pending restore, including a dispatch that was already
// posted but has not run yet.
func (c *Coordinator) ReloadStarted() {
	c.Abandon()
}

// Abandon drops the pending restore and any posted dispatch.
func (c *Coordinator) Abandon() {
	c.epoch++
	c.phase = PhaseIdle
	c.pending = none()
}

// LoadFinished is called after a fresh load was applied to the view. rehydrated is true
// when the activation was just restored from persisted state.
func (c *Coordinator) LoadFinished(rehydrated bool) {
	if c.phase != PhaseIdle || !rehydrated {
		return
	}
	act := c.state.Activated()
	if !act.IsSet() {
		return
	}
	c.phase = PhaseAwaitingChildLoad
	c.pending = act
}

// ChildrenLoaded is called when the children of the group at groupPos finished loading.
// A matching group completes the restore; any other group abandons it.
func (c *Coordinator) ChildrenLoaded(groupPos int) {
	if c.phase != PhaseAwaitingChildLoad {
		return
	}
	if groupPos != c.pending.Group {
		c.phase = PhaseIdle
		c.pending = none()
		return
	}

	act := c.pending
	epoch := c.epoch
	c.phase = PhaseRestored
	c.pending = none()

	// The view may still be applying the load that triggered this notification.
	c.poster.Post(func() {
		if epoch != c.epoch {
			return
		}
		if c.owner != nil && !c.owner.Alive() {
			return
		}
		c.reconciler.Apply(c.view.GroupIDs(), c.view.Expand)
		child, ok := c.view.Child(act.Group, act.Child)
		if !ok {
			return
		}
		c.state.RecordSelection(act.Group, act.Child)
		c.tracker.OnChildActivated(act.Group, act.Child, child)
	})
}
