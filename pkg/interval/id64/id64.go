// Package id64 adapts the interval set engine to uint64 ID spaces.
package id64

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/henderiw/intervalset/pkg/interval"
)

const IDBitSize = 64

type discrete struct{}

func (discrete) Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (discrete) Successor(v uint64) uint64 {
	if v == math.MaxUint64 {
		return v
	}
	return v + 1
}

func (discrete) Predecessor(v uint64) uint64 {
	if v == 0 {
		return v
	}
	return v - 1
}

// Discrete steps uint64 values, saturating at 0 and MaxUint64.
var Discrete interval.Discrete[uint64] = discrete{}

func New() *interval.Set[uint64] {
	return interval.New(Discrete)
}

func NewFromRanges(rr ...interval.Range[uint64]) *interval.Set[uint64] {
	return interval.NewFromRanges(Discrete, rr...)
}

// RangeFrom returns the closed range [from, to]; from must not exceed to.
func RangeFrom(from, to uint64) interval.Range[uint64] {
	return interval.RangeFrom(from, to)
}

func ParseRange(s string) (interval.Range[uint64], error) {
	var r interval.Range[uint64]
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := s[:h], s[h+1:]
	fromUint64, err := strconv.ParseUint(from, 10, IDBitSize)
	if err != nil {
		return r, fmt.Errorf("invalid from id %q in range %q", from, s)
	}
	toUint64, err := strconv.ParseUint(to, 10, IDBitSize)
	if err != nil {
		return r, fmt.Errorf("invalid to id %q in range %q", to, s)
	}
	if toUint64 < fromUint64 {
		return r, fmt.Errorf("from id exceeds to id in range %q", s)
	}
	return RangeFrom(fromUint64, toUint64), nil
}
