package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:05", 545},
		{"12:00", 720},
		{"17:30", 1050},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, "ParseClock(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseClock(%q)", tc.in)
	}
}

func TestParseClock12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12:00AM", 0},
		{"12:30am", 30},
		{"1:00AM", 60},
		{"11:59AM", 719},
		{"12:00PM", 720},
		{"12:45pm", 765},
		{"1:00PM", 780},
		{"9:00 PM", 1260},
		{"11:59PM", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, "ParseClock(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseClock(%q)", tc.in)
	}
}

func TestParseClockRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"9",
		"9:",
		":30",
		"abc",
		"9.30",
		"24:00",
		"-1:00",
		"12:60",
		"13:00PM",
		"0:30AM",
		"9:00XM",
	}
	for _, in := range bad {
		_, err := ParseClock(in)
		require.Error(t, err, "ParseClock(%q) should fail", in)
		assert.ErrorIs(t, err, ErrClockFormat, "ParseClock(%q)", in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "12:00", FormatClock(720))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 540, 719, 720, 1050, 1439} {
		got, err := ParseClock(FormatClock(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestSpanOverlaps(t *testing.T) {
	base := Span{Start: 540, End: 600} // 09:00-10:00

	assert.True(t, base.Overlaps(Span{Start: 570, End: 630}))
	assert.True(t, base.Overlaps(Span{Start: 500, End: 541}))
	assert.True(t, base.Overlaps(Span{Start: 550, End: 560}))

	// Half-open: touching endpoints do not overlap.
	assert.False(t, base.Overlaps(Span{Start: 600, End: 660}))
	assert.False(t, base.Overlaps(Span{Start: 480, End: 540}))
	assert.False(t, base.Overlaps(Span{Start: 700, End: 760}))
}

func TestSpanClip(t *testing.T) {
	bounds := Span{Start: 540, End: 1080} // 09:00-18:00

	clipped, ok := Span{Start: 480, End: 600}.Clip(bounds)
	assert.True(t, ok)
	assert.Equal(t, Span{Start: 540, End: 600}, clipped)

	clipped, ok = Span{Start: 1020, End: 1200}.Clip(bounds)
	assert.True(t, ok)
	assert.Equal(t, Span{Start: 1020, End: 1080}, clipped)

	clipped, ok = Span{Start: 600, End: 660}.Clip(bounds)
	assert.True(t, ok)
	assert.Equal(t, Span{Start: 600, End: 660}, clipped)

	// Disjoint and zero-length intersections report false.
	_, ok = Span{Start: 0, End: 540}.Clip(bounds)
	assert.False(t, ok)
	_, ok = Span{Start: 1080, End: 1140}.Clip(bounds)
	assert.False(t, ok)
}
