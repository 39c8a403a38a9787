// Package ipranges is a named IP range claim table over a bounded
// address space. Claimed ranges are tracked in a normalized interval
// set; the free space is derived from it, never bookkept separately.
package ipranges

import (
	"fmt"
	"math/big"
	"net/netip"
	"sync"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/interval/idip"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

type IPRanges interface {
	Claim(name string, ipRange string, route table.Route) error
	Release(name string) error
	Update(name string, route table.Route) error
	Get(name string) (table.Route, error)

	Count() int
	Has(name string) bool

	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes

	Available() []netipx.IPRange
	FindFree(size int64) (netipx.IPRange, error)
}

func New(from, to netip.Addr) (IPRanges, error) {
	ipRange := netipx.IPRangeFrom(from, to)
	if !ipRange.IsValid() {
		return nil, fmt.Errorf("invalid ip range from %s to %s", from.String(), to.String())
	}
	return &ipRanges{
		m:       new(sync.RWMutex),
		span:    ipRange,
		claimed: idip.New(),
		claims:  map[string]claim{},
	}, nil
}

type claim struct {
	ipRange netipx.IPRange
	route   table.Route
}

type ipRanges struct {
	m       *sync.RWMutex
	span    netipx.IPRange
	claimed *interval.Set[netip.Addr]
	claims  map[string]claim
}

func (r *ipRanges) Claim(name string, ipRange string, route table.Route) error {
	claimRange, err := r.validateRange(ipRange)
	if err != nil {
		return err
	}

	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.claims[name]; ok {
		return fmt.Errorf("claim %s already exists", name)
	}
	rng := idip.RangeFrom(claimRange.From(), claimRange.To())
	if r.claimed.Overlaps(rng) {
		return fmt.Errorf("range %s overlaps an existing claim", ipRange)
	}
	r.claimed.Add(rng)
	r.claims[name] = claim{ipRange: claimRange, route: route}
	return nil
}

func (r *ipRanges) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	c, ok := r.claims[name]
	if !ok {
		return fmt.Errorf("claim %s not found", name)
	}
	r.claimed.Remove(idip.RangeFrom(c.ipRange.From(), c.ipRange.To()))
	delete(r.claims, name)
	return nil
}

func (r *ipRanges) Update(name string, route table.Route) error {
	r.m.Lock()
	defer r.m.Unlock()

	c, ok := r.claims[name]
	if !ok {
		return fmt.Errorf("claim %s not found", name)
	}
	c.route = route
	r.claims[name] = c
	return nil
}

func (r *ipRanges) Get(name string) (table.Route, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	c, ok := r.claims[name]
	if !ok {
		return table.Route{}, fmt.Errorf("claim %s not found", name)
	}
	return c.route, nil
}

func (r *ipRanges) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.claims)
}

func (r *ipRanges) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.claims[name]
	return ok
}

func (r *ipRanges) GetAll() table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	var routes table.Routes
	for _, c := range r.claims {
		routes = append(routes, c.route)
	}
	return routes
}

func (r *ipRanges) GetByLabel(selector labels.Selector) table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	var routes table.Routes
	for _, c := range r.claims {
		if selector.Matches(c.route.Labels()) {
			routes = append(routes, c.route)
		}
	}
	return routes
}

// Available returns the unclaimed ranges inside the table's span.
func (r *ipRanges) Available() []netipx.IPRange {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.available()
}

func (r *ipRanges) available() []netipx.IPRange {
	free := r.claimed.DifferenceAll(idip.RangeFrom(r.span.From(), r.span.To()))

	var out []netipx.IPRange
	iter := free.Iterate()
	for iter.Next() {
		out = append(out, idip.IPRangeOf(iter.Range()))
	}
	return out
}

// FindFree returns the first unclaimed range holding at least size
// addresses, trimmed to exactly size.
func (r *ipRanges) FindFree(size int64) (netipx.IPRange, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, free := range r.available() {
		if numIPs(free.From(), free.To()) < size {
			continue
		}
		return netipx.IPRangeFrom(free.From(), addrAtOffset(free.From(), size-1)), nil
	}
	return netipx.IPRange{}, fmt.Errorf("no free range of size %d", size)
}

func (r *ipRanges) validateRange(ipRange string) (netipx.IPRange, error) {
	claimRange, err := netipx.ParseIPRange(ipRange)
	if err != nil {
		return netipx.IPRange{}, err
	}
	if r.span.From().Compare(claimRange.From()) > 0 ||
		claimRange.To().Compare(r.span.To()) > 0 {
		return netipx.IPRange{}, fmt.Errorf("ip range %s, does not fit in the range from %s to %s",
			ipRange, r.span.From().String(), r.span.To().String())
	}
	return claimRange, nil
}

func numIPs(from, to netip.Addr) int64 {
	diff := new(big.Int).Sub(ipToInt(to), ipToInt(from))
	return diff.Int64() + 1
}

func ipToInt(ip netip.Addr) *big.Int {
	bytes := ip.As16()
	ipInt := new(big.Int)
	ipInt.SetBytes(bytes[:])
	return ipInt
}

func addrAtOffset(from netip.Addr, offset int64) netip.Addr {
	ipInt := new(big.Int).Add(ipToInt(from), big.NewInt(offset))
	ipBytes := ipInt.Bytes()

	if len(ipBytes) < 16 {
		paddedBytes := make([]byte, 16-len(ipBytes))
		ipBytes = append(paddedBytes, ipBytes...)
	}

	var ip16 [16]byte
	copy(ip16[:], ipBytes)

	if from.Is4() {
		return netip.AddrFrom4(netip.AddrFrom16(ip16).As4())
	}
	return netip.AddrFrom16(ip16)
}
