package scheduling

import "time"

// sameDay compares calendar dates, ignoring time-of-day and monotonic
// clock readings.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// leaveFor scans the staff member's leave dates for the target day.
// Returns the surfaced reason and true when the staff member is on leave.
func leaveFor(staff StaffSchedule, date time.Time) (string, bool) {
	for _, leave := range staff.LeaveDates {
		if sameDay(leave.Date, date) {
			if leave.Reason != "" {
				return leave.Reason, true
			}
			return ReasonOnLeave, true
		}
	}
	return "", false
}

// blockedFor filters the staff member's one-off blocked times down to
// entries on the target calendar day.
func blockedFor(staff StaffSchedule, date time.Time) []BlockedTime {
	var blocked []BlockedTime
	for _, b := range staff.BlockedTimes {
		if sameDay(b.Date, date) {
			blocked = append(blocked, b)
		}
	}
	return blocked
}
