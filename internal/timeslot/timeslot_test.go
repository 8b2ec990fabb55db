package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"07:00 AM", 7 * 60, true},
		{"7:00 AM", 7 * 60, true},
		{"07:00", 7 * 60, true},
		{"7 PM", 19 * 60, true},
		{"7 pm", 19 * 60, true},
		{"  09:30 PM ", 21*60 + 30, true},
		{"12:00 AM", 0, true},
		{"12:00 PM", 12 * 60, true},
		{"15", 15 * 60, true},
		{"", 0, false},
		{"noon", 0, false},
		{"25:00", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseEndpoint(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.minutes, got, "input %q", tc.in)
		}
	}
}

func TestParseRange(t *testing.T) {
	r, ok := ParseRange("07:00 AM - 09:00 AM")
	require.True(t, ok)
	assert.Equal(t, Range{Start: 7 * 60, End: 9 * 60}, r)

	r, ok = ParseRange("7 PM-9 PM")
	require.True(t, ok)
	assert.Equal(t, Range{Start: 19 * 60, End: 21 * 60}, r)

	_, ok = ParseRange("07:00 AM")
	assert.False(t, ok, "no separator, no constraint")

	_, ok = ParseRange("junk - 09:00 AM")
	assert.False(t, ok)

	_, ok = ParseRange("07:00 AM - junk")
	assert.False(t, ok)
}

func TestOverlaps_HalfOpen(t *testing.T) {
	morning := Range{Start: 7 * 60, End: 9 * 60}

	assert.True(t, morning.Overlaps(Range{Start: 8 * 60, End: 10 * 60}))
	assert.True(t, morning.Overlaps(Range{Start: 6 * 60, End: 8 * 60}))
	assert.True(t, morning.Overlaps(Range{Start: 7 * 60, End: 9 * 60}))
	assert.True(t, morning.Overlaps(Range{Start: 6 * 60, End: 12 * 60}))

	// касание границ — не пересечение
	assert.False(t, morning.Overlaps(Range{Start: 9 * 60, End: 11 * 60}))
	assert.False(t, morning.Overlaps(Range{Start: 5 * 60, End: 7 * 60}))
}

func TestAnyOverlaps_SkipsUnparseable(t *testing.T) {
	slot := Range{Start: 8 * 60, End: 10 * 60}

	assert.True(t, AnyOverlaps(slot, []string{"garbage", "07:00 AM - 09:00 AM"}))
	assert.False(t, AnyOverlaps(slot, []string{"garbage", "whole day", ""}))
	assert.False(t, AnyOverlaps(slot, []string{"10:00 AM - 12:00 PM"}))
}

func TestInCatalog(t *testing.T) {
	catalog := []string{"07:00 AM - 09:00 AM", "09:00 AM - 11:00 AM"}

	assert.True(t, InCatalog("07:00 AM - 09:00 AM", catalog))
	assert.False(t, InCatalog("07:00-09:00", catalog))
}
