package interval

import (
	"fmt"
	"hash/fnv"
	"slices"
	"sort"
	"strings"
)

// Set is a mutable collection of closed ranges over a discrete element
// type T, kept normalized at all times: ranges are stored in ascending
// order of their lower bound, never overlap, and never abut (two ranges
// separated by zero steps are merged into one).
//
// A Set is safe for concurrent readers, not for concurrent mutation.
// Callers that share a Set across goroutines synchronize externally or
// work on a Clone.
type Set[T any] struct {
	d  Discrete[T]
	rr []Range[T]
}

// New returns an empty set over the element type stepped by d.
func New[T any](d Discrete[T]) *Set[T] {
	return &Set[T]{
		d: d,
	}
}

// NewFromRanges returns a set holding the union of rr, normalized.
func NewFromRanges[T any](d Discrete[T], rr ...Range[T]) *Set[T] {
	s := New(d)
	s.AddAll(rr...)
	return s
}

// overlap returns the index bounds [i, j) of the stored ranges that
// intersect the query [qs, qe]. Stored ranges are sorted and mutually
// disjoint, so the intersecting ranges form one contiguous run: the run
// starts at the first range whose upper bound reaches qs and ends before
// the first range whose lower bound passes qe.
func (s *Set[T]) overlap(qs, qe T) (int, int) {
	i := sort.Search(len(s.rr), func(k int) bool {
		return s.d.Compare(s.rr[k].to, qs) >= 0
	})
	j := i
	for j < len(s.rr) && s.d.Compare(s.rr[j].from, qe) <= 0 {
		j++
	}
	return i, j
}

// Add merges r into the set, coalescing it with any stored ranges it
// overlaps or touches. It returns false when r was already entirely
// covered by a single stored range, true when the set changed.
func (s *Set[T]) Add(r Range[T]) bool {
	// Widen the query one step per side so that ranges merely adjacent
	// to r are captured and coalesced, not only ranges intersecting it.
	i, j := s.overlap(s.d.Predecessor(r.from), s.d.Successor(r.to))
	if i == j {
		s.rr = slices.Insert(s.rr, i, r)
		return true
	}
	newFrom := r.from
	if s.d.Compare(s.rr[i].from, newFrom) < 0 {
		newFrom = s.rr[i].from
	}
	newTo := r.to
	if s.d.Compare(s.rr[j-1].to, newTo) > 0 {
		newTo = s.rr[j-1].to
	}
	if j-i == 1 &&
		s.d.Compare(newFrom, s.rr[i].from) == 0 &&
		s.d.Compare(newTo, s.rr[i].to) == 0 {
		// r sits inside an existing range, nothing to do.
		//
		//  f--------t
		//    f----t
		//      r
		return false
	}
	s.rr = slices.Replace(s.rr, i, j, Range[T]{from: newFrom, to: newTo})
	return true
}

// AddAll merges every range of rr into the set and returns true iff at
// least one of them changed it. The final normalized sequence does not
// depend on the order of rr.
func (s *Set[T]) AddAll(rr ...Range[T]) bool {
	changed := false
	for _, r := range rr {
		if s.Add(r) {
			changed = true
		}
	}
	return changed
}

// Remove deletes every value of r from the set and returns true iff the
// set changed. A stored range partially covered by r survives as its
// left and/or right remainder.
func (s *Set[T]) Remove(r Range[T]) bool {
	i, j := s.overlap(r.from, r.to)
	if i == j {
		return false
	}
	first, last := s.rr[i], s.rr[j-1]
	keep := make([]Range[T], 0, 2)
	if s.d.Compare(first.from, r.from) < 0 {
		// first pokes out on the left of r.
		//
		//  f--------t
		//      f--------t
		//          r
		keep = append(keep, Range[T]{from: first.from, to: s.d.Predecessor(r.from)})
	}
	if s.d.Compare(r.to, last.to) < 0 {
		// last pokes out on the right of r.
		keep = append(keep, Range[T]{from: s.d.Successor(r.to), to: last.to})
	}
	s.rr = slices.Replace(s.rr, i, j, keep...)
	return true
}

// RemoveAll deletes every range of rr and returns true iff at least one
// removal changed the set.
func (s *Set[T]) RemoveAll(rr ...Range[T]) bool {
	changed := false
	for _, r := range rr {
		if s.Remove(r) {
			changed = true
		}
	}
	return changed
}

// Retain intersects the set with the single range r: everything outside
// r is dropped. It returns true iff the set changed.
func (s *Set[T]) Retain(r Range[T]) bool {
	return s.RetainSet(NewFromRanges(s.d, r))
}

// RetainAll intersects the set with the union of rr (the input is
// normalized first). It returns true iff the set changed.
func (s *Set[T]) RetainAll(rr ...Range[T]) bool {
	return s.RetainSet(NewFromRanges(s.d, rr...))
}

// RetainSet intersects the set with other, keeping only the values both
// sets cover. Both stores are walked once as ascending streams. It
// returns true iff the final range sequence differs from the sequence
// before the call.
func (s *Set[T]) RetainSet(other *Set[T]) bool {
	if s == other {
		return false
	}
	out := make([]Range[T], 0, len(s.rr))
	k := 0
	for _, a := range s.rr {
		// Skip other-ranges that end before a starts.
		for k < len(other.rr) && s.d.Compare(other.rr[k].to, a.from) < 0 {
			k++
		}
		for k < len(other.rr) && s.d.Compare(other.rr[k].from, a.to) <= 0 {
			b := other.rr[k]
			from := a.from
			if s.d.Compare(b.from, from) > 0 {
				from = b.from
			}
			to := a.to
			if s.d.Compare(b.to, to) < 0 {
				to = b.to
			}
			out = append(out, Range[T]{from: from, to: to})
			if s.d.Compare(b.to, a.to) > 0 {
				// b extends past a, keep it for the next a.
				break
			}
			k++
		}
	}
	// Fragment replacement can reproduce the original sequence; compare
	// against the pre-call store rather than counting internal rewrites.
	if s.equalRanges(out) {
		return false
	}
	s.rr = out
	return true
}

// Difference returns a new set holding every value of r that the
// receiver does not cover. The receiver is not mutated.
func (s *Set[T]) Difference(r Range[T]) *Set[T] {
	return s.DifferenceAll(r)
}

// DifferenceAll returns a new set holding every value covered by rr but
// not by the receiver (the relative complement of the receiver within
// rr). The receiver is not mutated.
func (s *Set[T]) DifferenceAll(rr ...Range[T]) *Set[T] {
	out := NewFromRanges(s.d, rr...)
	out.RemoveAll(s.rr...)
	return out
}

// Gaps returns a new set holding the receiver's internal holes: every
// value strictly between the receiver's extreme bounds that the receiver
// does not cover. An empty receiver yields an empty result.
func (s *Set[T]) Gaps() *Set[T] {
	if len(s.rr) == 0 {
		return New(s.d)
	}
	return s.DifferenceAll(Range[T]{from: s.rr[0].from, to: s.rr[len(s.rr)-1].to})
}

// ContainsValue reports whether the set covers the value v.
func (s *Set[T]) ContainsValue(v T) bool {
	return s.Contains(RangeFrom(v, v))
}

// Contains reports whether a single stored range fully covers r. Stored
// ranges are maximally coalesced, so a query covered only by several
// stored ranges together is not contained.
func (s *Set[T]) Contains(r Range[T]) bool {
	i, j := s.overlap(r.from, r.to)
	return j-i == 1 &&
		s.d.Compare(s.rr[i].from, r.from) <= 0 &&
		s.d.Compare(r.to, s.rr[i].to) <= 0
}

// ContainsAll reports whether Contains holds for every range of rr.
func (s *Set[T]) ContainsAll(rr ...Range[T]) bool {
	for _, r := range rr {
		if !s.Contains(r) {
			return false
		}
	}
	return true
}

// Overlaps reports whether r intersects at least one stored range.
func (s *Set[T]) Overlaps(r Range[T]) bool {
	i, j := s.overlap(r.from, r.to)
	return i != j
}

// Clear removes all ranges.
func (s *Set[T]) Clear() {
	s.rr = nil
}

// Clone returns an independent copy of the set; mutating the copy never
// affects the original. Ranges are immutable values, so the copy is a
// structural copy of the range sequence only.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		d:  s.d,
		rr: slices.Clone(s.rr),
	}
}

// Size returns the number of stored ranges.
func (s *Set[T]) Size() int {
	return len(s.rr)
}

func (s *Set[T]) IsEmpty() bool {
	return len(s.rr) == 0
}

// Ranges returns a copy of the normalized range sequence in ascending
// order.
func (s *Set[T]) Ranges() []Range[T] {
	return slices.Clone(s.rr)
}

// Iterate walks the stored ranges in ascending order over a snapshot of
// the store.
func (s *Set[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{current: -1, rr: slices.Clone(s.rr)}
}

// Equal reports whether both sets hold the same normalized range
// sequence. Insertion order of the original inputs never matters.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if other == nil {
		return false
	}
	return s.equalRanges(other.rr)
}

func (s *Set[T]) equalRanges(rr []Range[T]) bool {
	return slices.EqualFunc(s.rr, rr, func(a, b Range[T]) bool {
		return s.d.Compare(a.from, b.from) == 0 && s.d.Compare(a.to, b.to) == 0
	})
}

// Hash returns an FNV-1a digest of the normalized range sequence. Sets
// that compare Equal hash identically.
func (s *Set[T]) Hash() uint64 {
	h := fnv.New64a()
	for _, r := range s.rr {
		fmt.Fprintf(h, "%v-%v;", r.from, r.to)
	}
	return h.Sum64()
}

func (s *Set[T]) String() string {
	sb := new(strings.Builder)
	sb.WriteByte('[')
	for i, r := range s.rr {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
