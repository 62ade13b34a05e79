package nonempty

import (
	"fmt"

	g "github.com/anacrolix/generics"
)

// Range is a half-open range of indexes [Start, End). Unset bounds extend to the respective end of
// the Vec.
type Range struct {
	Start g.Option[int]
	End   g.Option[int]
}

func RangeFull() Range {
	return Range{}
}

func RangeFrom(start int) Range {
	return Range{Start: g.Some(start)}
}

func RangeTo(end int) Range {
	return Range{End: g.Some(end)}
}

func RangeToInclusive(end int) Range {
	return RangeTo(end + 1)
}

func RangeOf(start, end int) Range {
	return Range{Start: g.Some(start), End: g.Some(end)}
}

func RangeInclusive(start, end int) Range {
	return RangeOf(start, end+1)
}

// Bounds resolves the range against a sequence of length n.
func (r Range) Bounds(n int) (start, end int) {
	start = r.Start.UnwrapOr(0)
	end = r.End.UnwrapOr(n)
	return
}

func (r Range) String() string {
	var start, end string
	if r.Start.Ok {
		start = fmt.Sprint(r.Start.Value)
	}
	if r.End.Ok {
		end = fmt.Sprint(r.End.Value)
	}
	return start + ".." + end
}
