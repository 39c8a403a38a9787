package interval

import (
	"fmt"
)

// Range is an immutable closed range [from, to] over an element type T.
// A range is well formed when from <= to under the element ordering; the
// per-type ParseRange constructors enforce this, RangeFrom documents it as
// a precondition.
type Range[T any] struct {
	from T
	to   T
}

func RangeFrom[T any](from, to T) Range[T] {
	return Range[T]{
		from: from,
		to:   to,
	}
}

// From returns the lower bound of r.
func (r Range[T]) From() T { return r.from }

// To returns the upper bound of r.
func (r Range[T]) To() T { return r.to }

func (r Range[T]) String() string {
	return fmt.Sprintf("%v-%v", r.from, r.to)
}
