package handlers

import (
	"net/http"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityHandler struct {
	DB *gorm.DB
}

// loadWeekSchedule builds the salon's weekly operating hours. Days with no
// stored row stay closed.
func loadWeekSchedule(db *gorm.DB, salonID uuid.UUID) (scheduling.WeekSchedule, error) {
	var rows []models.OperatingHours
	if err := db.Where("salon_id = ?", salonID).Find(&rows).Error; err != nil {
		return scheduling.WeekSchedule{}, err
	}

	var week scheduling.WeekSchedule
	for _, row := range rows {
		if row.DayOfWeek < 0 || row.DayOfWeek > 6 {
			continue
		}
		week[row.DayOfWeek] = scheduling.DayHours{
			Open:  row.IsOpen,
			Start: row.StartTime,
			End:   row.EndTime,
		}
	}
	return week, nil
}

// loadRoster loads every staff member of the salon with the schedule data
// relevant to the date, and folds pending/confirmed bookings in as blocked
// time so booked ranges never show up as free.
func loadRoster(db *gorm.DB, salonID uuid.UUID, date time.Time) ([]scheduling.StaffSchedule, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var staff []models.Staff
	err := db.Preload("WorkDays").
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC, position ASC")
		}).
		Preload("BlockedTimes", "date >= ? AND date < ?", dayStart, dayEnd).
		Preload("Leaves", "date >= ? AND date < ?", dayStart, dayEnd).
		Where("salon_id = ?", salonID).
		Order("created_at ASC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	err = db.Where("salon_id = ? AND date >= ? AND date < ? AND status IN ?",
		salonID, dayStart, dayEnd, models.BlockingStatuses()).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	bookedByStaff := map[uuid.UUID][]scheduling.BlockedTime{}
	for _, b := range bookings {
		bookedByStaff[b.StaffID] = append(bookedByStaff[b.StaffID], scheduling.BlockedTime{
			Date:   dayStart,
			Start:  b.StartTime,
			End:    b.EndTime,
			Reason: "Booked",
		})
	}

	roster := make([]scheduling.StaffSchedule, 0, len(staff))
	for _, s := range staff {
		sched := scheduling.StaffSchedule{
			ID:     s.ID.String(),
			Name:   s.Name,
			Active: s.Status == models.StaffStatusActive,
		}

		for _, wd := range s.WorkDays {
			if wd.DayOfWeek < 0 || wd.DayOfWeek > 6 {
				continue
			}
			sched.Days[wd.DayOfWeek].Available = wd.IsAvailable
		}
		for _, shift := range s.Shifts {
			if shift.DayOfWeek < 0 || shift.DayOfWeek > 6 {
				continue
			}
			sched.Days[shift.DayOfWeek].Slots = append(sched.Days[shift.DayOfWeek].Slots, scheduling.Slot{
				Start: shift.StartTime,
				End:   shift.EndTime,
			})
		}

		for _, bt := range s.BlockedTimes {
			sched.BlockedTimes = append(sched.BlockedTimes, scheduling.BlockedTime{
				Date:   bt.Date,
				Start:  bt.StartTime,
				End:    bt.EndTime,
				Reason: bt.Reason,
			})
		}
		sched.BlockedTimes = append(sched.BlockedTimes, bookedByStaff[s.ID]...)

		for _, l := range s.Leaves {
			sched.LeaveDates = append(sched.LeaveDates, scheduling.LeaveDate{
				Date:   l.Date,
				Reason: l.Reason,
			})
		}

		roster = append(roster, sched)
	}
	return roster, nil
}

func (h *AvailabilityHandler) resolveSalonAndDate(c *gin.Context) (uuid.UUID, time.Time, bool) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID"})
		return uuid.Nil, time.Time{}, false
	}

	var salon models.Salon
	if err := h.DB.Where("id = ? AND is_active = ?", salonID, true).First(&salon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return uuid.Nil, time.Time{}, false
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required (YYYY-MM-DD)"})
		return uuid.Nil, time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
		return uuid.Nil, time.Time{}, false
	}

	return salonID, date, true
}

// GetAvailability returns every active staff member's computed schedule for
// the date, including unavailable entries with their reason.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	salonID, date, ok := h.resolveSalonAndDate(c)
	if !ok {
		return
	}

	week, err := loadWeekSchedule(h.DB, salonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load operating hours"})
		return
	}

	roster, err := loadRoster(h.DB, salonID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}

	if staffID := c.Query("staff_id"); staffID != "" {
		filtered := roster[:0]
		for _, s := range roster {
			if s.ID == staffID {
				filtered = append(filtered, s)
			}
		}
		roster = filtered
	}

	results := scheduling.AllStaff(roster, date, week)
	if results == nil {
		results = []scheduling.Availability{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date.Format("2006-01-02"),
		"availability": results,
	})
}

// GetAvailableStaff returns only the staff members who can take a booking on
// the date, with their free slots.
func (h *AvailabilityHandler) GetAvailableStaff(c *gin.Context) {
	salonID, date, ok := h.resolveSalonAndDate(c)
	if !ok {
		return
	}

	week, err := loadWeekSchedule(h.DB, salonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load operating hours"})
		return
	}

	roster, err := loadRoster(h.DB, salonID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}

	results := scheduling.AvailableStaff(roster, date, week)
	if results == nil {
		results = []scheduling.Availability{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"staff": results,
	})
}
