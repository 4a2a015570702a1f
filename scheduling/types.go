package scheduling

import "time"

// Reasons surfaced on unavailable results. The booking UI shows these
// verbatim, so they are part of the contract.
const (
	ReasonOnLeave          = "On leave"
	ReasonShopClosed       = "Shop closed"
	ReasonNotScheduled     = "Staff not scheduled"
	ReasonComputationError = "Error calculating availability"
)

// DayHours is one weekday's operating window for a salon.
type DayHours struct {
	Open  bool
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// WeekSchedule holds a salon's operating hours indexed by time.Weekday
// (Sunday = 0). A fixed-size array keeps every day-of-week branch
// exhaustive by construction.
type WeekSchedule [7]DayHours

// Slot is a bookable time range, clock strings at the boundary.
type Slot struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// DaySchedule is a staff member's recurring plan for one weekday:
// whether they work at all, and their nominal slots (split shifts
// supported, e.g. a morning and an evening block).
type DaySchedule struct {
	Available bool
	Slots     []Slot
}

// BlockedTime is a one-off unavailable range on a specific calendar date,
// e.g. an existing appointment or a break.
type BlockedTime struct {
	Date   time.Time
	Start  string
	End    string
	Reason string
}

// LeaveDate marks a whole-day absence, overriding all recurring schedule
// data for that date.
type LeaveDate struct {
	Date   time.Time
	Reason string
}

// StaffSchedule is the full scheduling view of one staff member, already
// loaded by the caller. The package never touches storage itself.
type StaffSchedule struct {
	ID           string
	Name         string
	Active       bool
	Days         [7]DaySchedule // indexed by time.Weekday
	BlockedTimes []BlockedTime
	LeaveDates   []LeaveDate
}

// BlockedSlot is a blocked range projected into a result, with the reason
// it is blocked.
type BlockedSlot struct {
	Start  string `json:"start_time"`
	End    string `json:"end_time"`
	Reason string `json:"reason"`
}

// Availability is the computed result for one staff member on one date.
// It is derived fresh on every query and never cached.
type Availability struct {
	StaffID   string        `json:"staff_id"`
	StaffName string        `json:"staff_name"`
	Available bool          `json:"is_available"`
	Slots     []Slot        `json:"available_slots"`
	Blocked   []BlockedSlot `json:"blocked_slots"`
	Reason    string        `json:"reason,omitempty"`
}
