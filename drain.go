package nonempty

import (
	"slices"
)

// Drain removes the elements in r and returns them in order. It panics without modifying the Vec
// if r would leave no elements behind, or if r is out of bounds.
func (me *Vec[T]) Drain(r Range) []T {
	me.checkUsable()
	n := len(me.s)
	// Space is left at the start or the end of the Vec.
	leftoverStart := r.Start.Ok && r.Start.Value > 0
	if !leftoverStart {
		leftoverEnd := r.End.Ok && r.End.Value < n
		if !leftoverEnd {
			panic("range specified for Drain must leave at least one element")
		}
	}
	start, end := r.Bounds(n)
	removed := slices.Clone(me.s[start:end:n])
	me.s = slices.Delete(me.s, start, end)
	return removed
}
