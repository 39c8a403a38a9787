package idip

import (
	"net/netip"
	"testing"

	"github.com/tj/assert"
	"go4.org/netipx"
)

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		trange      string
		expectedErr bool
	}{
		"Normal":    {trange: "10.0.0.10-10.0.0.20"},
		"Single":    {trange: "10.0.0.10-10.0.0.10"},
		"V6":        {trange: "2001:db8::1-2001:db8::ff"},
		"Backwards": {trange: "10.0.0.20-10.0.0.10", expectedErr: true},
		"Garbage":   {trange: "10.0.0.10", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRange(tc.trange)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSet(t *testing.T) {
	s := New()

	r1, err := ParseRange("10.0.0.10-10.0.0.20")
	assert.NoError(t, err)
	r2, err := ParseRange("10.0.0.21-10.0.0.30")
	assert.NoError(t, err)

	assert.True(t, s.Add(r1))
	assert.True(t, s.Add(r2))
	// adjacent address ranges coalesce
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.ContainsValue(netip.MustParseAddr("10.0.0.25")))
	assert.False(t, s.ContainsValue(netip.MustParseAddr("10.0.0.31")))

	assert.True(t, s.Remove(r2))
	assert.False(t, s.ContainsValue(netip.MustParseAddr("10.0.0.25")))
}

func TestIPSetRoundTrip(t *testing.T) {
	s := New()
	r, err := ParseRange("10.0.0.0-10.0.0.255")
	assert.NoError(t, err)
	s.Add(r)
	r, err = ParseRange("10.0.2.0-10.0.2.127")
	assert.NoError(t, err)
	s.Add(r)

	ipset, err := ToIPSet(s)
	assert.NoError(t, err)
	assert.True(t, ipset.ContainsPrefix(netip.MustParsePrefix("10.0.0.0/24")))
	assert.False(t, ipset.Contains(netip.MustParseAddr("10.0.1.0")))

	back := FromIPSet(ipset)
	assert.True(t, back.Equal(s))
}

func TestGaps(t *testing.T) {
	s := New()
	r, err := ParseRange("10.0.0.10-10.0.0.20")
	assert.NoError(t, err)
	s.Add(r)
	r, err = ParseRange("10.0.0.30-10.0.0.40")
	assert.NoError(t, err)
	s.Add(r)

	gaps := s.Gaps()
	assert.Equal(t, 1, gaps.Size())
	want := netipx.IPRangeFrom(netip.MustParseAddr("10.0.0.21"), netip.MustParseAddr("10.0.0.29"))
	assert.Equal(t, want, IPRangeOf(gaps.Ranges()[0]))
}
