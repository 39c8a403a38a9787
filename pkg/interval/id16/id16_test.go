package id16

import (
	"testing"

	"github.com/tj/assert"
)

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		trange      string
		expectedErr bool
	}{
		"Normal":    {trange: "100-199"},
		"Single":    {trange: "4095-4095"},
		"NoHyphen":  {trange: "100", expectedErr: true},
		"Backwards": {trange: "199-100", expectedErr: true},
		"TooLarge":  {trange: "0-65536", expectedErr: true},
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

	r, err := ParseRange("1000-2000")
	assert.NoError(t, err)
	assert.True(t, s.Add(r))

	gaps := s.DifferenceAll(RangeFrom(0, 4095))
	assert.Equal(t, 2, gaps.Size())
	assert.True(t, gaps.Contains(RangeFrom(0, 999)))
	assert.True(t, gaps.Contains(RangeFrom(2001, 4095)))
}
