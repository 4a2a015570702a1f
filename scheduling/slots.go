package scheduling

import "sort"

// subtractBlocked removes blocked spans from the nominal spans, clipping
// everything to the salon's operating window, and returns the remaining
// free spans in order.
//
// Per nominal slot: blocked spans that overlap it are stable-sorted by
// start time (entries with equal starts keep their input order), then a
// cursor walks left to right emitting the gaps. Touching or overlapping
// blocks are processed independently; zero-length gaps are dropped rather
// than emitted.
func subtractBlocked(nominal []Span, blocked []Span, bounds Span) []Span {
	var free []Span

	for _, slot := range nominal {
		window, ok := slot.Clip(bounds)
		if !ok {
			continue
		}

		var overlapping []Span
		for _, b := range blocked {
			if b.Overlaps(slot) {
				overlapping = append(overlapping, b)
			}
		}

		if len(overlapping) == 0 {
			free = append(free, window)
			continue
		}

		sort.SliceStable(overlapping, func(i, j int) bool {
			return overlapping[i].Start < overlapping[j].Start
		})

		cur := window.Start
		for _, b := range overlapping {
			clipped, ok := b.Clip(bounds)
			if !ok {
				continue
			}
			if cur < clipped.Start {
				free = append(free, Span{Start: cur, End: clipped.Start})
			}
			if clipped.End > cur {
				cur = clipped.End
			}
		}
		if cur < window.End {
			free = append(free, Span{Start: cur, End: window.End})
		}
	}

	return free
}
