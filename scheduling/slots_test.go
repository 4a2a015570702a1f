package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func span(start, end string) Span {
	s, err := parseSpan(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func TestSubtractBlockedNoOverlapPassthrough(t *testing.T) {
	free := subtractBlocked(
		[]Span{span("09:00", "12:00")},
		[]Span{span("13:00", "14:00")},
		span("08:00", "20:00"),
	)
	assert.Equal(t, []Span{span("09:00", "12:00")}, free)
}

func TestSubtractBlockedSingleBlockSplitsSlot(t *testing.T) {
	free := subtractBlocked(
		[]Span{span("09:00", "17:00")},
		[]Span{span("12:00", "13:00")},
		span("09:00", "17:00"),
	)
	assert.Equal(t, []Span{
		span("09:00", "12:00"),
		span("13:00", "17:00"),
	}, free)
}

func TestSubtractBlockedMultiBlockSplit(t *testing.T) {
	free := subtractBlocked(
		[]Span{span("09:00", "18:00")},
		[]Span{span("10:00", "10:30"), span("14:00", "15:00")},
		span("09:00", "18:00"),
	)
	assert.Equal(t, []Span{
		span("09:00", "10:00"),
		span("10:30", "14:00"),
		span("15:00", "18:00"),
	}, free)
}

func TestSubtractBlockedFullCoverYieldsNothing(t *testing.T) {
	free := subtractBlocked(
		[]Span{span("10:00", "12:00")},
		[]Span{span("09:00", "13:00")},
		span("08:00", "20:00"),
	)
	assert.Empty(t, free)
}

func TestSubtractBlockedUnsortedBlocks(t *testing.T) {
	// Blocks arrive in arbitrary order; the walk sorts them by start.
	free := subtractBlocked(
		[]Span{span("09:00", "18:00")},
		[]Span{span("14:00", "15:00"), span("10:00", "10:30")},
		span("09:00", "18:00"),
	)
	assert.Equal(t, []Span{
		span("09:00", "10:00"),
		span("10:30", "14:00"),
		span("15:00", "18:00"),
	}, free)
}

func TestSubtractBlockedTouchingBlocks(t *testing.T) {
	// Adjacent blocks with no merging step; no zero-length gap between them.
	free := subtractBlocked(
		[]Span{span("09:00", "17:00")},
		[]Span{span("11:00", "12:00"), span("12:00", "13:00")},
		span("09:00", "17:00"),
	)
	assert.Equal(t, []Span{
		span("09:00", "11:00"),
		span("13:00", "17:00"),
	}, free)
}

func TestSubtractBlockedOverlappingBlocks(t *testing.T) {
	free := subtractBlocked(
		[]Span{span("09:00", "17:00")},
		[]Span{span("10:00", "12:00"), span("11:00", "13:00")},
		span("09:00", "17:00"),
	)
	assert.Equal(t, []Span{
		span("09:00", "10:00"),
		span("13:00", "17:00"),
	}, free)
}

func TestSubtractBlockedBlockAtSlotEdges(t *testing.T) {
	// Block flush with the slot start leaves only the tail, and vice versa;
	// zero-length segments are dropped, not emitted.
	free := subtractBlocked(
		[]Span{span("09:00", "12:00")},
		[]Span{span("09:00", "10:00")},
		span("08:00", "20:00"),
	)
	assert.Equal(t, []Span{span("10:00", "12:00")}, free)

	free = subtractBlocked(
		[]Span{span("09:00", "12:00")},
		[]Span{span("11:00", "12:00")},
		span("08:00", "20:00"),
	)
	assert.Equal(t, []Span{span("09:00", "11:00")}, free)
}

func TestSubtractBlockedClipsToOperatingWindow(t *testing.T) {
	// A nominal slot extending past the window is clipped even when it has
	// no overlapping blocks.
	free := subtractBlocked(
		[]Span{span("08:00", "21:00")},
		nil,
		span("09:00", "18:00"),
	)
	assert.Equal(t, []Span{span("09:00", "18:00")}, free)

	// Same clipping applies in the block-subtraction branch.
	free = subtractBlocked(
		[]Span{span("08:00", "21:00")},
		[]Span{span("12:00", "13:00")},
		span("09:00", "18:00"),
	)
	assert.Equal(t, []Span{
		span("09:00", "12:00"),
		span("13:00", "18:00"),
	}, free)
}

func TestSubtractBlockedBlockOutsideWindowIgnored(t *testing.T) {
	// A block that overlaps the nominal slot but falls entirely outside the
	// operating window has no effect on the clipped result.
	free := subtractBlocked(
		[]Span{span("08:00", "17:00")},
		[]Span{span("08:00", "08:30")},
		span("09:00", "18:00"),
	)
	assert.Equal(t, []Span{span("09:00", "17:00")}, free)
}

func TestSubtractBlockedSplitShifts(t *testing.T) {
	free := subtractBlocked(
		[]Span{span("09:00", "12:00"), span("16:00", "20:00")},
		[]Span{span("17:00", "18:00")},
		span("09:00", "20:00"),
	)
	assert.Equal(t, []Span{
		span("09:00", "12:00"),
		span("16:00", "17:00"),
		span("18:00", "20:00"),
	}, free)
}

func TestSubtractBlockedSlotOutsideWindowDropped(t *testing.T) {
	free := subtractBlocked(
		[]Span{span("06:00", "08:00")},
		nil,
		span("09:00", "18:00"),
	)
	assert.Empty(t, free)
}
