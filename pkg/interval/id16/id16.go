// Package id16 adapts the interval set engine to uint16 ID spaces
// (VLAN-sized and similar).
package id16

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/henderiw/intervalset/pkg/interval"
)

const IDBitSize = 16

type discrete struct{}

func (discrete) Compare(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (discrete) Successor(v uint16) uint16 {
	if v == math.MaxUint16 {
		return v
	}
	return v + 1
}

func (discrete) Predecessor(v uint16) uint16 {
	if v == 0 {
		return v
	}
	return v - 1
}

// Discrete steps uint16 values, saturating at 0 and MaxUint16.
var Discrete interval.Discrete[uint16] = discrete{}

func New() *interval.Set[uint16] {
	return interval.New(Discrete)
}

func NewFromRanges(rr ...interval.Range[uint16]) *interval.Set[uint16] {
	return interval.NewFromRanges(Discrete, rr...)
}

// RangeFrom returns the closed range [from, to]; from must not exceed to.
func RangeFrom(from, to uint16) interval.Range[uint16] {
	return interval.RangeFrom(from, to)
}

func ParseRange(s string) (interval.Range[uint16], error) {
	var r interval.Range[uint16]
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := s[:h], s[h+1:]
	fromUint16, err := strconv.ParseUint(from, 10, IDBitSize)
	if err != nil {
		return r, fmt.Errorf("invalid from id %q in range %q", from, s)
	}
	toUint16, err := strconv.ParseUint(to, 10, IDBitSize)
	if err != nil {
		return r, fmt.Errorf("invalid to id %q in range %q", to, s)
	}
	if toUint16 < fromUint16 {
		return r, fmt.Errorf("from id exceeds to id in range %q", s)
	}
	return RangeFrom(uint16(fromUint16), uint16(toUint16)), nil
}
