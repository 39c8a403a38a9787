// Package vlanranges is a named VLAN range reservation table. Reserved
// ranges are tracked in a normalized interval set over the 0-4095 VLAN
// space; the free space is derived from it.
package vlanranges

import (
	"fmt"
	"sync"

	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/interval/id16"
	"k8s.io/apimachinery/pkg/labels"
)

const (
	VLANMax = 4095
)

type Entry struct {
	Name   string
	Range  interval.Range[uint16]
	Labels labels.Set
}

type VLANRanges interface {
	Claim(name string, vlanRange string, d labels.Set) error
	Release(name string) error
	Update(name string, d labels.Set) error
	Get(name string) (Entry, error)

	Count() int
	Has(name string) bool

	GetAll() []Entry
	GetByLabel(selector labels.Selector) []Entry

	Available() []interval.Range[uint16]
	Gaps() []interval.Range[uint16]
}

var initEntries = map[string]struct {
	vlanRange string
	labels    labels.Set
}{
	"untagged": {vlanRange: "0-1", labels: map[string]string{"type": "untagged", "status": "reserved"}},
	"reserved": {vlanRange: "4095-4095", labels: map[string]string{"type": "untagged", "status": "reserved"}},
}

func New() (VLANRanges, error) {
	r := &vlanRanges{
		m:       new(sync.RWMutex),
		claimed: id16.New(),
		entries: map[string]Entry{},
	}
	for name, e := range initEntries {
		if err := r.Claim(name, e.vlanRange, e.labels); err != nil {
			return nil, err
		}
	}
	return r, nil
}

type vlanRanges struct {
	m       *sync.RWMutex
	claimed *interval.Set[uint16]
	entries map[string]Entry
}

func (r *vlanRanges) Claim(name string, vlanRange string, d labels.Set) error {
	rng, err := id16.ParseRange(vlanRange)
	if err != nil {
		return err
	}
	if rng.To() > VLANMax {
		return fmt.Errorf("vlan range %s exceeds %d", vlanRange, VLANMax)
	}

	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("claim %s already exists", name)
	}
	if r.claimed.Overlaps(rng) {
		return fmt.Errorf("vlan range %s overlaps an existing claim", vlanRange)
	}
	r.claimed.Add(rng)
	r.entries[name] = Entry{Name: name, Range: rng, Labels: d}
	return nil
}

func (r *vlanRanges) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("claim %s not found", name)
	}
	r.claimed.Remove(e.Range)
	delete(r.entries, name)
	return nil
}

func (r *vlanRanges) Update(name string, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("claim %s not found", name)
	}
	e.Labels = d
	r.entries[name] = e
	return nil
}

func (r *vlanRanges) Get(name string) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("claim %s not found", name)
	}
	return e, nil
}

func (r *vlanRanges) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *vlanRanges) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[name]
	return ok
}

func (r *vlanRanges) GetAll() []Entry {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	return entries
}

func (r *vlanRanges) GetByLabel(selector labels.Selector) []Entry {
	r.m.RLock()
	defer r.m.RUnlock()

	var entries []Entry
	for _, e := range r.entries {
		if selector.Matches(e.Labels) {
			entries = append(entries, e)
		}
	}
	return entries
}

// Available returns the unclaimed ranges inside the 0-4095 VLAN space.
func (r *vlanRanges) Available() []interval.Range[uint16] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.DifferenceAll(id16.RangeFrom(0, VLANMax)).Ranges()
}

// Gaps returns the unclaimed ranges strictly between the lowest and
// highest claimed VLAN.
func (r *vlanRanges) Gaps() []interval.Range[uint16] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.Gaps().Ranges()
}
