package nonempty

import (
	"fmt"

	g "github.com/anacrolix/generics"
)

// Vec is a slice that always holds at least one element. The zero Vec is not valid, use one of the
// constructors.
type Vec[T any] struct {
	s []T
	// Set while a DrainFilter holds the Vec.
	borrowed bool
}

// New returns a Vec holding only v.
func New[T any](v T) Vec[T] {
	return Vec[T]{s: []T{v}}
}

// Of returns a Vec of the arguments. Calling it with no arguments doesn't compile.
func Of[T any](first T, rest ...T) Vec[T] {
	s := make([]T, 0, 1+len(rest))
	s = append(s, first)
	return Vec[T]{s: append(s, rest...)}
}

// Repeat returns a Vec of n copies of v. Panics if n < 1.
func Repeat[T any](v T, n int) Vec[T] {
	if n < 1 {
		panic(fmt.Sprintf("nonempty: Repeat count must be positive, got %v", n))
	}
	s := make([]T, n)
	for i := range s {
		s[i] = v
	}
	return Vec[T]{s: s}
}

// FromSlice takes ownership of s if it's not empty. Otherwise it returns ErrEmpty and s is
// untouched.
func FromSlice[T any](s []T) (Vec[T], error) {
	if len(s) == 0 {
		return Vec[T]{}, ErrEmpty
	}
	return Vec[T]{s: s}, nil
}

// NewUnchecked wraps s without checking its length. The caller must guarantee s is not empty.
func NewUnchecked[T any](s []T) Vec[T] {
	return Vec[T]{s: s}
}

// FromHeadTail prepends head to tail. The Vec takes ownership of tail.
func FromHeadTail[T any](head T, tail []T) Vec[T] {
	var zero T
	tail = append(tail, zero)
	copy(tail[1:], tail)
	tail[0] = head
	return Vec[T]{s: tail}
}

// FromInitLast appends last to init. The Vec takes ownership of init.
func FromInitLast[T any](init []T, last T) Vec[T] {
	return Vec[T]{s: append(init, last)}
}

// Default returns a Vec holding the zero value of T.
func Default[T any]() Vec[T] {
	var zero T
	return New(zero)
}

func (me *Vec[T]) checkUsable() {
	if me.borrowed {
		panic("nonempty: Vec used while borrowed by a DrainFilter")
	}
	if len(me.s) == 0 {
		panic("nonempty: zero Vec used, use a constructor")
	}
}

// Len is always at least 1.
func (me *Vec[T]) Len() int {
	me.checkUsable()
	return len(me.s)
}

func (me *Vec[T]) Cap() int {
	me.checkUsable()
	return cap(me.s)
}

// IsEmpty always returns false. It exists for symmetry with other containers.
func (me *Vec[T]) IsEmpty() bool {
	return false
}

func (me *Vec[T]) First() T {
	me.checkUsable()
	return me.s[0]
}

func (me *Vec[T]) FirstMut() *T {
	me.checkUsable()
	return &me.s[0]
}

func (me *Vec[T]) Last() T {
	me.checkUsable()
	return me.s[len(me.s)-1]
}

func (me *Vec[T]) LastMut() *T {
	me.checkUsable()
	return &me.s[len(me.s)-1]
}

// SplitFirst returns the first element and the rest. The rest aliases the Vec.
func (me *Vec[T]) SplitFirst() (T, []T) {
	me.checkUsable()
	n := len(me.s)
	return me.s[0], me.s[1:n:n]
}

func (me *Vec[T]) SplitFirstMut() (*T, []T) {
	me.checkUsable()
	n := len(me.s)
	return &me.s[0], me.s[1:n:n]
}

// SplitLast returns the last element and everything before it. The latter aliases the Vec.
func (me *Vec[T]) SplitLast() (T, []T) {
	me.checkUsable()
	i := len(me.s) - 1
	return me.s[i], me.s[:i:i]
}

func (me *Vec[T]) SplitLastMut() (*T, []T) {
	me.checkUsable()
	i := len(me.s) - 1
	return &me.s[i], me.s[:i:i]
}

func (me *Vec[T]) Get(i int) T {
	me.checkUsable()
	return me.s[i]
}

func (me *Vec[T]) Set(i int, v T) {
	me.checkUsable()
	me.s[i] = v
}

func (me *Vec[T]) Mut(i int) *T {
	me.checkUsable()
	return &me.s[i]
}

// AsSlice returns the backing slice. Its length can't be changed through the result, but elements
// can be modified.
func (me *Vec[T]) AsSlice() []T {
	me.checkUsable()
	return me.s[:len(me.s):len(me.s)]
}

// Slice returns a copy of the elements.
func (me *Vec[T]) Slice() []T {
	me.checkUsable()
	return append([]T(nil), me.s...)
}

func (me *Vec[T]) Clone() Vec[T] {
	return Vec[T]{s: me.Slice()}
}

func (me *Vec[T]) Push(v T) {
	me.checkUsable()
	me.s = append(me.s, v)
}

// Pop removes the last element, unless it's the only one, in which case nothing is removed and
// None is returned.
func (me *Vec[T]) Pop() (ret g.Option[T]) {
	me.checkUsable()
	if len(me.s) <= 1 {
		return
	}
	i := len(me.s) - 1
	ret.Set(me.s[i])
	var zero T
	me.s[i] = zero
	me.s = me.s[:i]
	return
}

// Truncate keeps the first n elements. n must be at least 1. Does nothing if n >= Len.
func (me *Vec[T]) Truncate(n int) {
	me.checkUsable()
	if n < 1 {
		panic(fmt.Sprintf("nonempty: Truncate length must be positive, got %v", n))
	}
	if n >= len(me.s) {
		return
	}
	clear(me.s[n:])
	me.s = me.s[:n]
}

func (me *Vec[T]) String() string {
	return fmt.Sprint(me.s)
}
