// Package idrune adapts the interval set engine to character (rune)
// ranges such as a-z.
package idrune

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/henderiw/intervalset/pkg/interval"
)

type discrete struct{}

func (discrete) Compare(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (discrete) Successor(v rune) rune {
	if v >= unicode.MaxRune {
		return v
	}
	return v + 1
}

func (discrete) Predecessor(v rune) rune {
	if v <= 0 {
		return v
	}
	return v - 1
}

// Discrete steps runes by code point, saturating at 0 and MaxRune.
var Discrete interval.Discrete[rune] = discrete{}

func New() *interval.Set[rune] {
	return interval.New(Discrete)
}

func NewFromRanges(rr ...interval.Range[rune]) *interval.Set[rune] {
	return interval.NewFromRanges(Discrete, rr...)
}

// RangeFrom returns the closed range [from, to]; from must not exceed to.
func RangeFrom(from, to rune) interval.Range[rune] {
	return interval.RangeFrom(from, to)
}

// ParseRange parses a character range of the form "a-z": one character,
// a hyphen, one character.
func ParseRange(s string) (interval.Range[rune], error) {
	var r interval.Range[rune]
	from, n := utf8.DecodeRuneInString(s)
	if from == utf8.RuneError {
		return r, fmt.Errorf("invalid from character in range %q", s)
	}
	rest := s[n:]
	if len(rest) == 0 || rest[0] != '-' {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	rest = rest[1:]
	to, n := utf8.DecodeRuneInString(rest)
	if to == utf8.RuneError {
		return r, fmt.Errorf("invalid to character in range %q", s)
	}
	if len(rest) != n {
		return r, fmt.Errorf("trailing characters in range %q", s)
	}
	if to < from {
		return r, fmt.Errorf("from character exceeds to character in range %q", s)
	}
	return RangeFrom(from, to), nil
}
