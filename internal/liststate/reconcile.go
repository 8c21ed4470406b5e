package liststate

import "sort"

// Reconcile expands every position whose group id is in stored and returns those positions.
// Stored ids that no longer match a group are dropped.
func Reconcile(groupIDs []int64, stored []int64, expand func(pos int)) []int {
	if len(stored) == 0 || len(groupIDs) == 0 {
		return nil
	}
	ids := append([]int64(nil), stored...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []int
	for pos, id := range groupIDs {
		i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
		if i < len(ids) && ids[i] == id {
			expand(pos)
			out = append(out, pos)
		}
	}
	return out
}

// Reconciler holds an expanded-id set restored from persisted state until the first
// fresh load consumes it.
type Reconciler struct {
	ids     []int64
	pending bool
}

// Stash records ids restored from persisted state. A nil slice still counts as restored
// state (nothing was expanded).
func (r *Reconciler) Stash(ids []int64) {
	r.ids = append([]int64(nil), ids...)
	r.pending = true
}

func (r *Reconciler) Pending() bool { return r.pending }

// Apply reconciles the stashed ids against a fresh load and consumes them.
// It is a no-op once applied.
func (r *Reconciler) Apply(groupIDs []int64, expand func(pos int)) ([]int, bool) {
	if !r.pending {
		return nil, false
	}
	out := Reconcile(groupIDs, r.ids, expand)
	r.pending = false
	r.ids = nil
	return out, true
}

// Stashed returns the ids still waiting for a load, or nil once applied.
func (r *Reconciler) Stashed() []int64 {
	if !r.pending {
		return nil
	}
	return append([]int64(nil), r.ids...)
}
