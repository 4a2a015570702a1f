package handlers

import (
	"net/http"
	"strconv"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/scheduling"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffHandler struct {
	DB *gorm.DB
}

func (h *StaffHandler) staffForSalon(c *gin.Context) (*models.Staff, bool) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return nil, false
	}

	var staff models.Staff
	if err := h.DB.Where("id = ? AND salon_id = ?", c.Param("id"), salonID).First(&staff).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return nil, false
	}
	return &staff, true
}

func (h *StaffHandler) ListStaff(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	query := h.DB.Preload("WorkDays", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC")
	}).Preload("Shifts", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC, position ASC")
	}).Where("salon_id = ?", salonID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var staff []models.Staff
	if err := query.Order("created_at ASC").Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *StaffHandler) GetStaff(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	var staff models.Staff
	err := h.DB.Preload("WorkDays", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC")
	}).Preload("Shifts", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC, position ASC")
	}).Preload("BlockedTimes", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC, start_time ASC")
	}).Preload("Leaves", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC")
	}).Where("id = ? AND salon_id = ?", c.Param("id"), salonID).First(&staff).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Title string `json:"title"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	staff := models.Staff{
		ID:      uuid.New(),
		SalonID: salonID.(uuid.UUID),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Title:   req.Title,
		Status:  models.StaffStatusActive,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&staff).Error; err != nil {
			return err
		}
		// One work-day row per weekday so schedule edits are pure updates.
		for day := 0; day < 7; day++ {
			wd := models.StaffWorkDay{
				StaffID:     staff.ID,
				DayOfWeek:   day,
				IsAvailable: false,
			}
			if err := tx.Create(&wd).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	staff, ok := h.staffForSalon(c)
	if !ok {
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Phone  *string `json:"phone"`
		Title  *string `json:"title"`
		Status *string `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Status != nil && *req.Status != models.StaffStatusActive && *req.Status != models.StaffStatusInactive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Active or Inactive"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := h.DB.Model(staff).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff member"})
			return
		}
	}

	h.DB.Where("id = ?", staff.ID).First(staff)
	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	staff, ok := h.staffForSalon(c)
	if !ok {
		return
	}

	if err := h.DB.Delete(staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}

// UpdateSchedule replaces the recurring weekly schedule: which weekdays
// the staff member works and the shift blocks for each working day.
func (h *StaffHandler) UpdateSchedule(c *gin.Context) {
	staff, ok := h.staffForSalon(c)
	if !ok {
		return
	}

	var req struct {
		Days []struct {
			DayOfWeek   int  `json:"day_of_week" binding:"min=0,max=6"`
			IsAvailable bool `json:"is_available"`
			Shifts      []struct {
				StartTime string `json:"start_time" binding:"required"`
				EndTime   string `json:"end_time" binding:"required"`
			} `json:"shifts"`
		} `json:"days" binding:"required,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	seen := map[int]bool{}
	for _, day := range req.Days {
		if seen[day.DayOfWeek] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate day_of_week in schedule"})
			return
		}
		seen[day.DayOfWeek] = true

		for _, shift := range day.Shifts {
			start, err := scheduling.ParseClock(shift.StartTime)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_time for day " + strconv.Itoa(day.DayOfWeek)})
				return
			}
			end, err := scheduling.ParseClock(shift.EndTime)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_time for day " + strconv.Itoa(day.DayOfWeek)})
				return
			}
			if end <= start {
				c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be after start_time for day " + strconv.Itoa(day.DayOfWeek)})
				return
			}
		}
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, day := range req.Days {
			result := tx.Model(&models.StaffWorkDay{}).
				Where("staff_id = ? AND day_of_week = ?", staff.ID, day.DayOfWeek).
				Update("is_available", day.IsAvailable)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				wd := models.StaffWorkDay{
					StaffID:     staff.ID,
					DayOfWeek:   day.DayOfWeek,
					IsAvailable: day.IsAvailable,
				}
				if err := tx.Create(&wd).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("staff_id = ? AND day_of_week = ?", staff.ID, day.DayOfWeek).
				Delete(&models.StaffShift{}).Error; err != nil {
				return err
			}
			for i, shift := range day.Shifts {
				s := models.StaffShift{
					StaffID:   staff.ID,
					DayOfWeek: day.DayOfWeek,
					StartTime: shift.StartTime,
					EndTime:   shift.EndTime,
					Position:  i,
				}
				if err := tx.Create(&s).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}

	var updated models.Staff
	h.DB.Preload("WorkDays", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC")
	}).Preload("Shifts", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC, position ASC")
	}).Where("id = ?", staff.ID).First(&updated)

	c.JSON(http.StatusOK, updated)
}

func (h *StaffHandler) AddBlockedTime(c *gin.Context) {
	staff, ok := h.staffForSalon(c)
	if !ok {
		return
	}

	var req struct {
		Date      string `json:"date" binding:"required"`
		StartTime string `json:"start_time" binding:"required"`
		EndTime   string `json:"end_time" binding:"required"`
		Reason    string `json:"reason"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
		return
	}

	start, err := scheduling.ParseClock(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_time"})
		return
	}
	end, err := scheduling.ParseClock(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_time"})
		return
	}
	if end <= start {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be after start_time"})
		return
	}

	blocked := models.StaffBlockedTime{
		StaffID:   staff.ID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.DB.Create(&blocked).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add blocked time"})
		return
	}

	c.JSON(http.StatusCreated, blocked)
}

func (h *StaffHandler) RemoveBlockedTime(c *gin.Context) {
	staff, ok := h.staffForSalon(c)
	if !ok {
		return
	}

	result := h.DB.Where("id = ? AND staff_id = ?", c.Param("blockId"), staff.ID).
		Delete(&models.StaffBlockedTime{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove blocked time"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blocked time not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blocked time removed"})
}

func (h *StaffHandler) AddLeave(c *gin.Context) {
	staff, ok := h.staffForSalon(c)
	if !ok {
		return
	}

	var req struct {
		Date   string `json:"date" binding:"required"`
		Reason string `json:"reason"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
		return
	}

	var existing models.StaffLeave
	if err := h.DB.Where("staff_id = ? AND date = ?", staff.ID, date).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Leave already recorded for this date"})
		return
	}

	leave := models.StaffLeave{
		StaffID: staff.ID,
		Date:    date,
		Reason:  req.Reason,
	}

	if err := h.DB.Create(&leave).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add leave"})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

func (h *StaffHandler) RemoveLeave(c *gin.Context) {
	staff, ok := h.staffForSalon(c)
	if !ok {
		return
	}

	result := h.DB.Where("id = ? AND staff_id = ?", c.Param("leaveId"), staff.ID).
		Delete(&models.StaffLeave{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove leave"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leave not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leave removed"})
}
