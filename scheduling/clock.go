package scheduling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrClockFormat is returned when a clock string cannot be parsed.
// Callers should treat it as a data-integrity problem, not default the value.
var ErrClockFormat = errors.New("invalid clock time")

// ParseClock converts a clock string to minutes since midnight (0-1439).
// Two encodings exist in stored data: 24-hour "HH:MM" used by operating
// hours and staff shifts, and legacy 12-hour "H:MMAM"/"H:MMPM"
// (case-insensitive). Both are accepted here so callers never have to know
// which subsystem wrote the value.
func ParseClock(s string) (int, error) {
	raw := strings.TrimSpace(s)
	upper := strings.ToUpper(raw)

	meridiem := ""
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem = upper[len(upper)-2:]
		upper = strings.TrimSpace(upper[:len(upper)-2])
	}

	parts := strings.Split(upper, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, s)
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("%w: %q", ErrClockFormat, s)
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrClockFormat, s)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrClockFormat, s)
		}
		if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minute, nil
}

// FormatClock converts minutes since midnight back to zero-padded
// 24-hour "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Span is a half-open interval [Start, End) in minutes since midnight.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open spans share any instant.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Clip intersects s with bounds. The second return value is false when
// the intersection is empty.
func (s Span) Clip(bounds Span) (Span, bool) {
	start := s.Start
	if bounds.Start > start {
		start = bounds.Start
	}
	end := s.End
	if bounds.End < end {
		end = bounds.End
	}
	if start >= end {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}

func parseSpan(start, end string) (Span, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Span{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: s, End: e}, nil
}
