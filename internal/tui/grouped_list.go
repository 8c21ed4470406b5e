package tui

import (
	"tasks-cli/internal/model"
)

type rowKind int

const (
	rowGroup rowKind = iota
	rowChild
)

// listRow is one visible line of the grouped list.
type listRow struct {
	kind  rowKind
	group int
	child int
}

// groupedList holds the loaded groups, which of them are expanded, and the children
// loaded so far. Children are keyed by group id so a reload that shifts positions never
// attaches rows to the wrong group.
type groupedList struct {
	groups   []model.Group
	expanded []bool
	children map[int64][]model.Child
	loaded   map[int64]bool
	inFlight map[int64]bool

	cursor int
}

func newGroupedList() *groupedList {
	return &groupedList{
		children: map[int64][]model.Child{},
		loaded:   map[int64]bool{},
		inFlight: map[int64]bool{},
	}
}

// setGroups replaces the loaded groups. Expansion and children are reset; callers
// restore expansion by id afterwards.
func (l *groupedList) setGroups(groups []model.Group) {
	l.groups = groups
	l.expanded = make([]bool, len(groups))
	l.children = map[int64][]model.Child{}
	l.loaded = map[int64]bool{}
	l.inFlight = map[int64]bool{}
	l.clampCursor()
}

func (l *groupedList) GroupIDs() []int64 {
	ids := make([]int64, len(l.groups))
	for i, g := range l.groups {
		ids[i] = g.ID
	}
	return ids
}

func (l *groupedList) Expand(pos int) {
	if pos < 0 || pos >= len(l.expanded) {
		return
	}
	l.expanded[pos] = true
}

func (l *groupedList) collapse(pos int) {
	if pos < 0 || pos >= len(l.expanded) {
		return
	}
	l.expanded[pos] = false
	l.clampCursor()
}

func (l *groupedList) isExpanded(pos int) bool {
	return pos >= 0 && pos < len(l.expanded) && l.expanded[pos]
}

// Child returns the loaded child at (groupPos, childPos).
func (l *groupedList) Child(groupPos, childPos int) (model.Child, bool) {
	if groupPos < 0 || groupPos >= len(l.groups) {
		return model.Child{}, false
	}
	kids := l.children[l.groups[groupPos].ID]
	if childPos < 0 || childPos >= len(kids) {
		return model.Child{}, false
	}
	return kids[childPos], true
}

func (l *groupedList) groupPos(id int64) int {
	for i, g := range l.groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (l *groupedList) setChildren(groupID int64, kids []model.Child) {
	delete(l.inFlight, groupID)
	l.children[groupID] = kids
	l.loaded[groupID] = true
	l.clampCursor()
}

// needsChildren reports whether the group at pos has neither loaded nor requested its
// children yet.
func (l *groupedList) needsChildren(pos int) bool {
	if pos < 0 || pos >= len(l.groups) {
		return false
	}
	id := l.groups[pos].ID
	return !l.loaded[id] && !l.inFlight[id]
}

func (l *groupedList) rows() []listRow {
	out := make([]listRow, 0, len(l.groups))
	for gi, g := range l.groups {
		out = append(out, listRow{kind: rowGroup, group: gi, child: -1})
		if !l.isExpanded(gi) {
			continue
		}
		for ci := range l.children[g.ID] {
			out = append(out, listRow{kind: rowChild, group: gi, child: ci})
		}
	}
	return out
}

func (l *groupedList) current() (listRow, bool) {
	rows := l.rows()
	if l.cursor < 0 || l.cursor >= len(rows) {
		return listRow{}, false
	}
	return rows[l.cursor], true
}

func (l *groupedList) move(delta int) {
	l.cursor += delta
	l.clampCursor()
}

// focus moves the cursor onto the given row if it is visible.
func (l *groupedList) focus(groupPos, childPos int) bool {
	for i, r := range l.rows() {
		if r.group != groupPos {
			continue
		}
		if (childPos < 0 && r.kind == rowGroup) || (r.kind == rowChild && r.child == childPos) {
			l.cursor = i
			return true
		}
	}
	return false
}

func (l *groupedList) clampCursor() {
	n := len(l.rows())
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}
