package scheduling

import (
	"log"
	"time"
)

// ForStaff computes one staff member's availability for a calendar date
// against the salon's weekly operating hours.
//
// Gate order matters for which reason is surfaced: leave is checked first,
// then whether the salon is open that weekday, then whether the staff
// member is scheduled at all. Blocked-time subtraction only runs once all
// three gates pass.
//
// Any unexpected failure (malformed clock string, bad slot data) is logged
// and converted into an unavailable result instead of propagating, so a
// single broken record never breaks the booking view.
func ForStaff(staff StaffSchedule, date time.Time, hours WeekSchedule) (result Availability) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scheduling: panic computing availability for staff %s on %s: %v",
				staff.ID, date.Format("2006-01-02"), r)
			result = unavailable(staff, ReasonComputationError)
		}
	}()

	avail, err := forStaff(staff, date, hours)
	if err != nil {
		log.Printf("scheduling: failed to compute availability for staff %s on %s: %v",
			staff.ID, date.Format("2006-01-02"), err)
		return unavailable(staff, ReasonComputationError)
	}
	return avail
}

// AvailableStaff returns availability for the staff members who can
// actually take bookings on the date: inactive staff are skipped, and
// unavailable results are filtered out. Roster order is preserved.
func AvailableStaff(roster []StaffSchedule, date time.Time, hours WeekSchedule) []Availability {
	var results []Availability
	for _, staff := range roster {
		if !staff.Active {
			continue
		}
		avail := ForStaff(staff, date, hours)
		if avail.Available {
			results = append(results, avail)
		}
	}
	return results
}

// AllStaff returns every active staff member's result, available or not,
// in roster order. Consumers use the unavailable entries to show "why
// unavailable" messaging.
func AllStaff(roster []StaffSchedule, date time.Time, hours WeekSchedule) []Availability {
	var results []Availability
	for _, staff := range roster {
		if !staff.Active {
			continue
		}
		results = append(results, ForStaff(staff, date, hours))
	}
	return results
}

func forStaff(staff StaffSchedule, date time.Time, hours WeekSchedule) (Availability, error) {
	if reason, onLeave := leaveFor(staff, date); onLeave {
		return unavailable(staff, reason), nil
	}

	weekday := date.Weekday()

	day := hours[weekday]
	if !day.Open {
		return unavailable(staff, ReasonShopClosed), nil
	}

	sched := staff.Days[weekday]
	if !sched.Available {
		return unavailable(staff, ReasonNotScheduled), nil
	}

	bounds, err := parseSpan(day.Start, day.End)
	if err != nil {
		return Availability{}, err
	}

	nominal := make([]Span, 0, len(sched.Slots))
	for _, slot := range sched.Slots {
		span, err := parseSpan(slot.Start, slot.End)
		if err != nil {
			return Availability{}, err
		}
		nominal = append(nominal, span)
	}

	blocked := blockedFor(staff, date)
	blockedSpans := make([]Span, 0, len(blocked))
	blockedSlots := make([]BlockedSlot, 0, len(blocked))
	for _, b := range blocked {
		span, err := parseSpan(b.Start, b.End)
		if err != nil {
			return Availability{}, err
		}
		blockedSpans = append(blockedSpans, span)
		blockedSlots = append(blockedSlots, BlockedSlot{
			Start:  b.Start,
			End:    b.End,
			Reason: b.Reason,
		})
	}

	free := subtractBlocked(nominal, blockedSpans, bounds)

	slots := make([]Slot, 0, len(free))
	for _, span := range free {
		slots = append(slots, Slot{
			Start: FormatClock(span.Start),
			End:   FormatClock(span.End),
		})
	}

	return Availability{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		Available: true,
		Slots:     slots,
		Blocked:   blockedSlots,
	}, nil
}

func unavailable(staff StaffSchedule, reason string) Availability {
	return Availability{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		Available: false,
		Slots:     []Slot{},
		Blocked:   []BlockedSlot{},
		Reason:    reason,
	}
}
