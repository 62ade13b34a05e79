/*
Package nonempty provides Vec, a slice that always holds at least one element.

Operations that would empty a Vec refuse to: Pop returns None on the last element, Truncate
requires a positive length, and Drain panics on a range covering everything. DrainFilter removes
elements selected by a predicate in place, from either end, and never offers the last remaining
candidate to the predicate.

	v := nonempty.Of(1, 2, 3, 4, 5, 6)
	df := v.DrainFilter(func(i *int) bool { return *i%2 == 1 })
	for i := range df.All() {
		fmt.Println("removed", i)
	}
	// v is now [2 4 6]
*/
package nonempty
