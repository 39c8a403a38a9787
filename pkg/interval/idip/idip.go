// Package idip adapts the interval set engine to IP address ranges and
// bridges to go4.org/netipx sets.
package idip

import (
	"net/netip"

	"github.com/henderiw/intervalset/pkg/interval"
	"go4.org/netipx"
)

type discrete struct{}

func (discrete) Compare(a, b netip.Addr) int {
	return a.Compare(b)
}

func (discrete) Successor(v netip.Addr) netip.Addr {
	if n := v.Next(); n.IsValid() {
		return n
	}
	return v
}

func (discrete) Predecessor(v netip.Addr) netip.Addr {
	if p := v.Prev(); p.IsValid() {
		return p
	}
	return v
}

// Discrete steps IP addresses, saturating at the first and last address
// of the family. Ranges must not mix address families.
var Discrete interval.Discrete[netip.Addr] = discrete{}

func New() *interval.Set[netip.Addr] {
	return interval.New(Discrete)
}

func NewFromRanges(rr ...interval.Range[netip.Addr]) *interval.Set[netip.Addr] {
	return interval.NewFromRanges(Discrete, rr...)
}

// RangeFrom returns the closed range [from, to]; from must not exceed to.
func RangeFrom(from, to netip.Addr) interval.Range[netip.Addr] {
	return interval.RangeFrom(from, to)
}

// ParseRange parses an IP range of the form "10.0.0.1-10.0.0.20".
func ParseRange(s string) (interval.Range[netip.Addr], error) {
	ipRange, err := netipx.ParseIPRange(s)
	if err != nil {
		return interval.Range[netip.Addr]{}, err
	}
	return RangeFrom(ipRange.From(), ipRange.To()), nil
}

// IPRangeOf converts a stored range back to a netipx.IPRange.
func IPRangeOf(r interval.Range[netip.Addr]) netipx.IPRange {
	return netipx.IPRangeFrom(r.From(), r.To())
}

// ToIPSet converts s to a netipx.IPSet covering the same addresses.
func ToIPSet(s *interval.Set[netip.Addr]) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	iter := s.Iterate()
	for iter.Next() {
		b.AddRange(IPRangeOf(iter.Range()))
	}
	return b.IPSet()
}

// FromIPSet returns a set covering the same addresses as ipset.
func FromIPSet(ipset *netipx.IPSet) *interval.Set[netip.Addr] {
	s := New()
	for _, r := range ipset.Ranges() {
		s.Add(RangeFrom(r.From(), r.To()))
	}
	return s
}
