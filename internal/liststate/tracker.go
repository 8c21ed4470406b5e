package liststate

import "tasks-cli/internal/model"

// Observer receives selections made in the list. Calls must not block.
type Observer interface {
	OnItemSelected(taskID int64)
	OnAddNewTask()
}

// Selection is a resolved activation: the task behind the activated row.
type Selection struct {
	TaskID int64

	Group int
	Child int
}

// Tracker turns row activations into task selections for a single observer.
type Tracker struct {
	observer Observer
	detached bool
}

// Register replaces the current observer.
func (t *Tracker) Register(o Observer) {
	t.observer = o
	t.detached = false
}

// Detach stops all further notifications. Called when the owning list is torn down.
func (t *Tracker) Detach() {
	t.observer = nil
	t.detached = true
}

func (t *Tracker) notify(fn func(Observer)) {
	if t.detached || t.observer == nil {
		return
	}
	fn(t.observer)
}

// OnChildActivated resolves the activated row to its task. Rows without a task id
// are ignored.
func (t *Tracker) OnChildActivated(groupPos, childPos int, child model.Child) (Selection, bool) {
	if child.TaskID == nil {
		return Selection{}, false
	}
	sel := Selection{TaskID: *child.TaskID, Group: groupPos, Child: childPos}
	t.notify(func(o Observer) { o.OnItemSelected(sel.TaskID) })
	return sel, true
}

// AddNewTask routes the "add new task" command to the observer.
func (t *Tracker) AddNewTask() {
	t.notify(func(o Observer) { o.OnAddNewTask() })
}
