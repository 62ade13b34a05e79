package nonempty

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// The iterators check the Vec is still usable before each element, so opening a DrainFilter inside
// the loop body panics on the next step.

func (me *Vec[T]) All() iter.Seq2[int, T] {
	me.checkUsable()
	return func(yield func(int, T) bool) {
		for i := 0; ; i++ {
			me.checkUsable()
			if i >= len(me.s) || !yield(i, me.s[i]) {
				return
			}
		}
	}
}

func (me *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range me.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (me *Vec[T]) Backward() iter.Seq2[int, T] {
	me.checkUsable()
	return func(yield func(int, T) bool) {
		for i := len(me.s) - 1; ; i-- {
			me.checkUsable()
			i = min(i, len(me.s)-1)
			if i < 0 || !yield(i, me.s[i]) {
				return
			}
		}
	}
}

// Pointers yields a pointer to each element, for modifying them in place.
func (me *Vec[T]) Pointers() iter.Seq2[int, *T] {
	me.checkUsable()
	return func(yield func(int, *T) bool) {
		for i := 0; ; i++ {
			me.checkUsable()
			if i >= len(me.s) || !yield(i, &me.s[i]) {
				return
			}
		}
	}
}

func Equal[T comparable](a, b Vec[T]) bool {
	return slices.Equal(a.AsSlice(), b.AsSlice())
}

func EqualFunc[T, U any](a Vec[T], b Vec[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.AsSlice(), b.AsSlice(), eq)
}

// Compare orders Vecs lexicographically, like slices.Compare.
func Compare[T constraints.Ordered](a, b Vec[T]) int {
	return slices.Compare(a.AsSlice(), b.AsSlice())
}
