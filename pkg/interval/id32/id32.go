// Package id32 adapts the interval set engine to uint32 ID spaces.
package id32

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/henderiw/intervalset/pkg/interval"
)

const IDBitSize = 32

type discrete struct{}

func (discrete) Compare(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (discrete) Successor(v uint32) uint32 {
	if v == math.MaxUint32 {
		return v
	}
	return v + 1
}

func (discrete) Predecessor(v uint32) uint32 {
	if v == 0 {
		return v
	}
	return v - 1
}

// Discrete steps uint32 values, saturating at 0 and MaxUint32.
var Discrete interval.Discrete[uint32] = discrete{}

func New() *interval.Set[uint32] {
	return interval.New(Discrete)
}

func NewFromRanges(rr ...interval.Range[uint32]) *interval.Set[uint32] {
	return interval.NewFromRanges(Discrete, rr...)
}

// RangeFrom returns the closed range [from, to]; from must not exceed to.
func RangeFrom(from, to uint32) interval.Range[uint32] {
	return interval.RangeFrom(from, to)
}

func ParseRange(s string) (interval.Range[uint32], error) {
	var r interval.Range[uint32]
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := s[:h], s[h+1:]
	fromUint32, err := strconv.ParseUint(from, 10, IDBitSize)
	if err != nil {
		return r, fmt.Errorf("invalid from id %q in range %q", from, s)
	}
	toUint32, err := strconv.ParseUint(to, 10, IDBitSize)
	if err != nil {
		return r, fmt.Errorf("invalid to id %q in range %q", to, s)
	}
	if toUint32 < fromUint32 {
		return r, fmt.Errorf("from id exceeds to id in range %q", s)
	}
	return RangeFrom(uint32(fromUint32), uint32(toUint32)), nil
}
