package id32

import (
	"math"
	"testing"

	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/tj/assert"
)

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		trange       string
		expectedErr  bool
		expectedFrom uint32
		expectedTo   uint32
	}{
		"Normal": {
			trange:       "65000-65100",
			expectedFrom: 65000,
			expectedTo:   65100,
		},
		"Single": {
			trange:       "100-100",
			expectedFrom: 100,
			expectedTo:   100,
		},
		"NoHyphen": {
			trange:      "65000",
			expectedErr: true,
		},
		"InvalidFrom": {
			trange:      "x-100",
			expectedErr: true,
		},
		"InvalidTo": {
			trange:      "100-y",
			expectedErr: true,
		},
		"Backwards": {
			trange:      "200-100",
			expectedErr: true,
		},
		"Overflow": {
			trange:      "0-4294967296",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := ParseRange(tc.trange)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedFrom, r.From())
			assert.Equal(t, tc.expectedTo, r.To())
		})
	}
}

func TestSet(t *testing.T) {
	s := New()
	assert.True(t, s.Add(RangeFrom(100, 199)))
	assert.True(t, s.Add(RangeFrom(200, 299)))
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.Contains(RangeFrom(100, 299)))

	assert.True(t, s.Remove(RangeFrom(150, 249)))
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.ContainsValue(149))
	assert.False(t, s.ContainsValue(150))
}

func TestSaturation(t *testing.T) {
	assert.Equal(t, uint32(math.MaxUint32), Discrete.Successor(math.MaxUint32))
	assert.Equal(t, uint32(0), Discrete.Predecessor(0))
	assert.Equal(t, uint32(11), Discrete.Successor(10))
	assert.Equal(t, uint32(9), Discrete.Predecessor(10))

	// adding at the domain edges must not wrap
	s := NewFromRanges(RangeFrom(0, 10))
	assert.False(t, s.Add(RangeFrom(0, 5)))
	s = NewFromRanges(RangeFrom(math.MaxUint32-10, math.MaxUint32))
	assert.False(t, s.Add(interval.RangeFrom[uint32](math.MaxUint32-5, math.MaxUint32)))
}
