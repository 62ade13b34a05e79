package nonempty

import (
	"github.com/anacrolix/missinggo/v2/panicif"
)

// zones partitions buf[:oldLen] while a DrainFilter rearranges it in place:
//
//	[0, left)          kept
//	[left, i)          vacated
//	[i, r)             untouched
//	[r, right)         vacated
//	[right, oldLen)    kept, settled from the back
//
// Vacated slots hold the zero value. They are only ever written to, never read.
type zones[T any] struct {
	buf      []T
	left, i  int
	r, right int
	oldLen   int
}

func newZones[T any](buf []T) zones[T] {
	return zones[T]{
		buf:    buf,
		r:      len(buf),
		right:  len(buf),
		oldLen: len(buf),
	}
}

func (z *zones[T]) vacated(k int) bool {
	return z.left <= k && k < z.i || z.r <= k && k < z.right
}

func (z *zones[T]) untouched() int {
	return z.r - z.i
}

// Moves the element out of slot k. The caller must account for k in the boundaries.
func (z *zones[T]) take(k int) (v T) {
	panicif.True(z.vacated(k))
	v = z.buf[k]
	var zero T
	z.buf[k] = zero
	return
}

func (z *zones[T]) put(k int, v T) {
	panicif.False(z.vacated(k))
	z.buf[k] = v
}

func (z *zones[T]) popFront() T {
	panicif.True(z.i >= z.r)
	v := z.take(z.i)
	z.i++
	return v
}

func (z *zones[T]) popBack() T {
	panicif.True(z.i >= z.r)
	v := z.take(z.r - 1)
	z.r--
	return v
}

func (z *zones[T]) insertFront(v T) {
	if z.left >= z.i {
		panic("no vacated space available in front")
	}
	z.put(z.left, v)
	z.left++
}

func (z *zones[T]) insertBack(v T) {
	if z.right <= z.r {
		panic("no vacated space available in the back")
	}
	z.put(z.right-1, v)
	z.right--
}

// Keeps everything untouched, then slides the back-settled elements down behind the front-settled
// ones. Returns the new length of the buffer.
func (z *zones[T]) compact() int {
	for z.i < z.r {
		z.insertFront(z.popFront())
	}
	// With nothing untouched, [left, right) is one vacated run. Fold it into the front.
	z.i, z.r = z.right, z.right
	for z.right < z.oldLen {
		v := z.take(z.right)
		z.right++
		z.i, z.r = z.right, z.right
		z.insertFront(v)
	}
	return z.left
}
