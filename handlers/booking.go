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

type BookingHandler struct {
	DB *gorm.DB
}

// CreateBooking books a staff member for a service. The requested window
// must sit entirely inside one of the staff member's computed free slots
// for that date, which already accounts for operating hours, the recurring
// schedule, leave, blocked time and existing bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		SalonID   uuid.UUID `json:"salon_id" binding:"required"`
		StaffID   uuid.UUID `json:"staff_id" binding:"required"`
		ServiceID uuid.UUID `json:"service_id" binding:"required"`
		Date      string    `json:"date" binding:"required"`
		StartTime string    `json:"start_time" binding:"required"`
		Notes     string    `json:"notes"`
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

	var salon models.Salon
	if err := h.DB.Where("id = ? AND is_active = ?", req.SalonID, true).First(&salon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}

	var service models.Service
	if err := h.DB.Where("id = ? AND salon_id = ? AND is_active = ?", req.ServiceID, req.SalonID, true).First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	var staff models.Staff
	if err := h.DB.Where("id = ? AND salon_id = ?", req.StaffID, req.SalonID).First(&staff).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	end := start + service.DurationMinutes
	if end > 24*60 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking would run past midnight"})
		return
	}
	endTime := scheduling.FormatClock(end)

	week, err := loadWeekSchedule(h.DB, req.SalonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load operating hours"})
		return
	}

	roster, err := loadRoster(h.DB, req.SalonID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}

	var staffSched *scheduling.StaffSchedule
	for i := range roster {
		if roster[i].ID == req.StaffID.String() {
			staffSched = &roster[i]
			break
		}
	}
	if staffSched == nil || !staffSched.Active {
		c.JSON(http.StatusConflict, gin.H{"error": "Staff member is not available for booking"})
		return
	}

	avail := scheduling.ForStaff(*staffSched, date, week)
	if !avail.Available {
		reason := avail.Reason
		if reason == "" {
			reason = "Staff member is not available on this date"
		}
		c.JSON(http.StatusConflict, gin.H{"error": reason})
		return
	}

	fits := false
	for _, slot := range avail.Slots {
		slotStart, err1 := scheduling.ParseClock(slot.Start)
		slotEnd, err2 := scheduling.ParseClock(slot.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if start >= slotStart && end <= slotEnd {
			fits = true
			break
		}
	}
	if !fits {
		c.JSON(http.StatusConflict, gin.H{"error": "Requested time is not available"})
		return
	}

	booking := models.Booking{
		ID:        uuid.New(),
		UserID:    userID.(uuid.UUID),
		SalonID:   req.SalonID,
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   endTime,
		Status:    models.BookingStatusPending,
		Price:     service.Price,
		Notes:     req.Notes,
	}

	if err := h.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	var user models.User
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err == nil {
		utils.SendBookingConfirmation(user.Email, user.Name, booking.BookingNumber, salon.Name, staff.Name, req.Date, req.StartTime)
	}

	h.DB.Preload("Service").Preload("Staff").Preload("Salon").Where("id = ?", booking.ID).First(&booking)
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.Booking{}).Where("user_id = ?", userID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.Preload("Service").Preload("Staff").Preload("Salon").
		Order("date DESC, start_time DESC").Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var booking models.Booking
	if err := h.DB.Preload("Service").Preload("Staff").Preload("Salon").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking lets the customer cancel their own pending or confirmed
// booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var booking models.Booking
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if !models.IsValidTransition(booking.Status, models.BookingStatusCancelled) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking cannot be cancelled in its current status"})
		return
	}

	if err := h.DB.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}

	booking.Status = models.BookingStatusCancelled
	c.JSON(http.StatusOK, booking)
}

// --- Salon portal ---

func (h *BookingHandler) ListSalonBookings(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	query := h.DB.Model(&models.Booking{}).Where("salon_id = ?", salonID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if staffID := c.Query("staff_id"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
			return
		}
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		query = query.Where("date >= ? AND date < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	var bookings []models.Booking
	if err := query.Preload("Service").Preload("Staff").Preload("User").
		Order("date ASC, start_time ASC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatus moves a booking through its status state machine
// (confirm, complete, cancel, no-show).
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	var booking models.Booking
	if err := h.DB.Where("id = ? AND salon_id = ?", c.Param("id"), salonID).First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if !models.IsValidTransition(booking.Status, req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot transition booking from " + string(booking.Status) + " to " + string(req.Status),
		})
		return
	}

	if err := h.DB.Model(&booking).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	booking.Status = req.Status
	c.JSON(http.StatusOK, booking)
}
