package nonempty

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
)

// DrainFilter removes elements from a Vec in place, from either end, yielding those for which the
// predicate returns true. The last unclassified element is never offered to the predicate, so the
// Vec can't be emptied. The Vec can't be used until Close is called.
type DrainFilter[T any] struct {
	vec    *Vec[T]
	pred   func(*T) bool
	z      zones[T]
	closed bool
}

// DrainFilter borrows the Vec until the returned DrainFilter is closed. Nothing is removed until it
// is driven. The predicate may modify the element it is passed, the change is kept if the element
// is.
func (me *Vec[T]) DrainFilter(pred func(*T) bool) *DrainFilter[T] {
	me.checkUsable()
	me.borrowed = true
	return &DrainFilter[T]{
		vec:  me,
		pred: pred,
		z:    newZones(me.s),
	}
}

// RetainFunc removes the elements for which keep returns false, except that at least one element
// is always kept. The removed elements are returned in order.
func (me *Vec[T]) RetainFunc(keep func(*T) bool) []T {
	return me.DrainFilter(func(v *T) bool {
		return !keep(v)
	}).Collect()
}

// Next returns the next removed element from the front.
func (me *DrainFilter[T]) Next() g.Option[T] {
	for !me.closed && me.z.untouched() > 1 {
		item := me.z.popFront()
		if me.pred(&item) {
			return g.Some(item)
		}
		me.z.insertFront(item)
	}
	return g.None[T]()
}

// NextBack returns the next removed element from the back.
func (me *DrainFilter[T]) NextBack() g.Option[T] {
	for !me.closed && me.z.untouched() > 1 {
		item := me.z.popBack()
		if me.pred(&item) {
			return g.Some(item)
		}
		me.z.insertBack(item)
	}
	return g.None[T]()
}

// SizeHint returns bounds on the number of elements still to be yielded.
func (me *DrainFilter[T]) SizeHint() (lower, upper int) {
	if me.closed {
		return 0, 0
	}
	return 0, max(me.z.untouched()-1, 0)
}

// Close keeps anything not yet classified, compacts the Vec and releases it. It's safe to call
// more than once.
func (me *DrainFilter[T]) Close() {
	if me.closed {
		return
	}
	me.closed = true
	if u := me.z.untouched(); u > 1 {
		logger.Levelf(log.Debug, "closing unexhausted drain filter, keeping %v unclassified elements", u)
	}
	n := me.z.compact()
	me.vec.s = me.vec.s[:n]
	me.vec.borrowed = false
}

// All yields removed elements from the front. The DrainFilter is closed when the loop ends, however
// it ends.
func (me *DrainFilter[T]) All() iter.Seq[T] {
	return me.seq(me.Next)
}

// Backward yields removed elements from the back, and closes like All.
func (me *DrainFilter[T]) Backward() iter.Seq[T] {
	return me.seq(me.NextBack)
}

func (me *DrainFilter[T]) seq(next func() g.Option[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer me.Close()
		for {
			v := next()
			if !v.Ok || !yield(v.Value) {
				return
			}
		}
	}
}

// Collect removes everything the predicate selects, front to back, and closes.
func (me *DrainFilter[T]) Collect() (ret []T) {
	for v := range me.All() {
		ret = append(ret, v)
	}
	return
}
