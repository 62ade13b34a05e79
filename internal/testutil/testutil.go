// Package testutil contains stuff for testing nonempty-related behaviour.
package testutil

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/stretchr/testify/require"
)

// Tracked is an element with an identity, so tests can check that every element ends up somewhere
// exactly once.
type Tracked struct {
	ID  uint32
	Val int
}

func (me *Tracked) String() string {
	return fmt.Sprintf("#%v(%v)", me.ID, me.Val)
}

// Track returns pointers to Tracked elements with IDs 0..len(vals)-1.
func Track(vals ...int) (ret []*Tracked) {
	for i, v := range vals {
		ret = append(ret, &Tracked{ID: uint32(i), Val: v})
	}
	return
}

func Vals(ts []*Tracked) (ret []int) {
	for _, t := range ts {
		ret = append(ret, t.Val)
	}
	return
}

// Ledger records the IDs of elements seen, failing on duplicates.
type Ledger struct {
	seen roaring.Bitmap
}

func (me *Ledger) Account(t require.TestingT, ts ...*Tracked) {
	for _, e := range ts {
		require.NotNil(t, e)
		require.True(t, me.seen.CheckedAdd(e.ID), "element %v seen twice", e)
	}
}

// RequireComplete checks that exactly the IDs 0..n-1 were seen.
func (me *Ledger) RequireComplete(t require.TestingT, n int) {
	require.EqualValues(t, n, me.seen.GetCardinality())
	if n > 0 {
		require.EqualValues(t, n-1, me.seen.Maximum())
	}
}

// RequireZero checks that every element of s is the zero value. Use it on the capacity beyond a
// slice's length to check nothing is retained.
func RequireZero[T comparable](t require.TestingT, s []T) {
	var zero T
	for i, v := range s {
		require.Equal(t, zero, v, "index %v", i)
	}
}
