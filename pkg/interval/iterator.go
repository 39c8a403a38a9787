package interval

// Iterator walks a snapshot of a set's normalized range sequence in
// ascending order.
type Iterator[T any] struct {
	current int
	rr      []Range[T]
}

func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.rr)
}

func (r *Iterator[T]) Range() Range[T] {
	return r.rr[r.current]
}
