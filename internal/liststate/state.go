// Package liststate tracks the expand/collapse and activated-row state of the grouped
// task list, and restores it after reloads and restarts.
//
// Everything here is driven from a single control loop (the TUI's Update). Nothing in
// this package is safe for concurrent use, and nothing needs to be.
package liststate

import (
	"tasks-cli/internal/model"
	"tasks-cli/internal/store"
)

// NoPosition marks an unset group or child position.
const NoPosition = -1

// Activation is the activated (group, child) position pair.
type Activation struct {
	Group int
	Child int
}

func none() Activation { return Activation{Group: NoPosition, Child: NoPosition} }

// IsSet reports whether both positions are set.
func (a Activation) IsSet() bool {
	return a.Group != NoPosition && a.Child != NoPosition
}

// State holds the activated row of the list. Expansion lives in the view and is
// captured by SnapshotExpandedIDs when the list is suspended.
type State struct {
	activated Activation
}

// NewState returns a State with nothing activated.
func NewState() *State {
	return &State{activated: none()}
}

// Activated returns the activated pair; unset positions are NoPosition.
func (s *State) Activated() Activation { return s.activated }

// RecordSelection overwrites the activated pair.
func (s *State) RecordSelection(groupPos, childPos int) {
	s.activated = Activation{Group: groupPos, Child: childPos}
}

// ClearIfGroup resets the activation when groupPos is the activated group.
// A collapsed group's children are not addressable, so its activated child is gone.
func (s *State) ClearIfGroup(groupPos int) bool {
	if s.activated.Group != groupPos {
		return false
	}
	s.activated = none()
	return true
}

// SnapshotExpandedIDs returns the ids of the groups whose position is expanded.
func SnapshotExpandedIDs(groups []model.Group, isExpanded func(pos int) bool) []int64 {
	out := make([]int64, 0, len(groups))
	for i, g := range groups {
		if isExpanded(i) {
			out = append(out, g.ID)
		}
	}
	return out
}

// Save writes the activation into st. Unset positions are left absent rather than
// written as a sentinel.
func (s *State) Save(st *store.TUIState, expandedIDs []int64) {
	if st == nil {
		return
	}
	st.ExpandedGroupIDs = expandedIDs
	st.ActivatedGroup = nil
	st.ActivatedChild = nil
	if s.activated.Group != NoPosition {
		g := s.activated.Group
		st.ActivatedGroup = &g
	}
	if s.activated.Child != NoPosition {
		c := s.activated.Child
		st.ActivatedChild = &c
	}
}

// Restore rehydrates the activation from st and returns the stored expanded ids.
// Absent keys restore as NoPosition.
func (s *State) Restore(st *store.TUIState) []int64 {
	s.activated = none()
	if st == nil {
		return nil
	}
	if st.ActivatedGroup != nil && *st.ActivatedGroup >= 0 {
		s.activated.Group = *st.ActivatedGroup
	}
	if st.ActivatedChild != nil && *st.ActivatedChild >= 0 {
		s.activated.Child = *st.ActivatedChild
	}
	return st.ExpandedGroupIDs
}
