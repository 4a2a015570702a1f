package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"salonbook-backend/models"
	"salonbook-backend/scheduling"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SalonHandler struct {
	DB *gorm.DB
}

// ListSalons returns active salons for the public storefront.
func (h *SalonHandler) ListSalons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.Salon{}).Where("is_active = ?", true)

	if city := c.Query("city"); city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var salons []models.Salon
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&salons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch salons"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salons": salons,
		"total":  total,
		"page":   page,
		"limit":  limit,
		"pages":  int(math.Ceil(float64(total) / float64(limit))),
	})
}

// GetSalon looks a salon up by UUID or slug and includes its operating hours.
func (h *SalonHandler) GetSalon(c *gin.Context) {
	idOrSlug := c.Param("id")

	var salon models.Salon
	query := h.DB.Preload("OperatingHours", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC")
	})

	if _, err := uuid.Parse(idOrSlug); err == nil {
		query = query.Where("id = ?", idOrSlug)
	} else {
		query = query.Where("slug = ?", strings.ToLower(idOrSlug))
	}

	if err := query.First(&salon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}

	if !salon.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}

	c.JSON(http.StatusOK, salon)
}

// GetNearestSalon returns active salons sorted by distance from the given coordinates.
func (h *SalonHandler) GetNearestSalon(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}

	var salons []models.Salon
	if err := h.DB.Where("is_active = ?", true).Find(&salons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch salons"})
		return
	}

	type salonWithDistance struct {
		models.Salon
		DistanceMiles float64 `json:"distance_miles"`
	}

	results := make([]salonWithDistance, 0, len(salons))
	for _, s := range salons {
		d := utils.Haversine(lat, lng, s.Latitude, s.Longitude)
		results = append(results, salonWithDistance{Salon: s, DistanceMiles: math.Round(d*10) / 10})
	}

	for i := 0; i < len(results); i++ {
		for j := i + 1; j < len(results); j++ {
			if results[j].DistanceMiles < results[i].DistanceMiles {
				results[i], results[j] = results[j], results[i]
			}
		}
	}

	maxResults := 10
	if len(results) < maxResults {
		maxResults = len(results)
	}

	c.JSON(http.StatusOK, gin.H{"salons": results[:maxResults]})
}

// CreateSalon is the admin endpoint for onboarding a salon together with its owner account.
func (h *SalonHandler) CreateSalon(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		Slug          string  `json:"slug" binding:"required"`
		Description   string  `json:"description"`
		Address       string  `json:"address"`
		City          string  `json:"city"`
		PostCode      string  `json:"post_code"`
		Phone         string  `json:"phone"`
		Email         string  `json:"email"`
		Latitude      float64 `json:"latitude"`
		Longitude     float64 `json:"longitude"`
		Timezone      string  `json:"timezone"`
		OwnerEmail    string  `json:"owner_email" binding:"required,email"`
		OwnerPassword string  `json:"owner_password" binding:"required,min=8"`
		OwnerName     string  `json:"owner_name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var existing models.Salon
	if err := h.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A salon with this slug already exists"})
		return
	}

	var existingUser models.User
	if err := h.DB.Where("email = ?", req.OwnerEmail).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Owner email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "Europe/London"
	}

	var salon models.Salon
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		owner := models.User{
			ID:       uuid.New(),
			Email:    req.OwnerEmail,
			Password: string(hashedPassword),
			Name:     req.OwnerName,
			Role:     "salon_owner",
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		salon = models.Salon{
			ID:          uuid.New(),
			Name:        req.Name,
			Slug:        slug,
			Description: req.Description,
			Address:     req.Address,
			City:        req.City,
			PostCode:    req.PostCode,
			Phone:       req.Phone,
			Email:       req.Email,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			Timezone:    timezone,
			OwnerID:     owner.ID,
			IsActive:    true,
		}
		if err := tx.Create(&salon).Error; err != nil {
			return err
		}

		if err := tx.Model(&owner).Update("salon_id", salon.ID).Error; err != nil {
			return err
		}

		// Default operating hours: closed Sunday, 09:00-18:00 otherwise.
		for day := 0; day < 7; day++ {
			hours := models.OperatingHours{
				SalonID:   salon.ID,
				DayOfWeek: day,
				IsOpen:    day != 0,
				StartTime: "09:00",
				EndTime:   "18:00",
			}
			if err := tx.Create(&hours).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create salon"})
		return
	}

	c.JSON(http.StatusCreated, salon)
}

func (h *SalonHandler) UpdateSalon(c *gin.Context) {
	id := c.Param("id")

	var salon models.Salon
	if err := h.DB.Where("id = ?", id).First(&salon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Address     *string  `json:"address"`
		City        *string  `json:"city"`
		PostCode    *string  `json:"post_code"`
		Phone       *string  `json:"phone"`
		Email       *string  `json:"email"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		Timezone    *string  `json:"timezone"`
		IsActive    *bool    `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostCode != nil {
		updates["post_code"] = *req.PostCode
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Timezone != nil {
		updates["timezone"] = *req.Timezone
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&salon).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update salon"})
			return
		}
	}

	h.DB.Where("id = ?", id).First(&salon)
	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) DeleteSalon(c *gin.Context) {
	id := c.Param("id")

	var salon models.Salon
	if err := h.DB.Where("id = ?", id).First(&salon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}

	if err := h.DB.Delete(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete salon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Salon deleted successfully"})
}

// --- Salon portal ---

func (h *SalonHandler) salonFromContext(c *gin.Context) (*models.Salon, bool) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return nil, false
	}

	var salon models.Salon
	if err := h.DB.Where("id = ?", salonID).First(&salon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return nil, false
	}
	return &salon, true
}

func (h *SalonHandler) GetMySalon(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	var salon models.Salon
	if err := h.DB.Preload("OperatingHours", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC")
	}).Where("id = ?", salonID).First(&salon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) UpdateMySalon(c *gin.Context) {
	salon, ok := h.salonFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Address     *string  `json:"address"`
		City        *string  `json:"city"`
		PostCode    *string  `json:"post_code"`
		Phone       *string  `json:"phone"`
		Email       *string  `json:"email"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostCode != nil {
		updates["post_code"] = *req.PostCode
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}

	if len(updates) > 0 {
		if err := h.DB.Model(salon).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update salon"})
			return
		}
	}

	h.DB.Where("id = ?", salon.ID).First(salon)
	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) GetOperatingHours(c *gin.Context) {
	salon, ok := h.salonFromContext(c)
	if !ok {
		return
	}

	var hours []models.OperatingHours
	if err := h.DB.Where("salon_id = ?", salon.ID).Order("day_of_week ASC").Find(&hours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch operating hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"operating_hours": hours})
}

// UpdateOperatingHours replaces the full week of hours in one call.
func (h *SalonHandler) UpdateOperatingHours(c *gin.Context) {
	salon, ok := h.salonFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Hours []struct {
			DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
			IsOpen    bool   `json:"is_open"`
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
		} `json:"hours" binding:"required,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	seen := map[int]bool{}
	for _, entry := range req.Hours {
		if seen[entry.DayOfWeek] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate day_of_week in hours"})
			return
		}
		seen[entry.DayOfWeek] = true

		if entry.IsOpen {
			start, err := scheduling.ParseClock(entry.StartTime)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_time for day " + strconv.Itoa(entry.DayOfWeek)})
				return
			}
			end, err := scheduling.ParseClock(entry.EndTime)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_time for day " + strconv.Itoa(entry.DayOfWeek)})
				return
			}
			if end <= start {
				c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be after start_time for day " + strconv.Itoa(entry.DayOfWeek)})
				return
			}
		}
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Hours {
			updates := map[string]interface{}{
				"is_open":    entry.IsOpen,
				"start_time": entry.StartTime,
				"end_time":   entry.EndTime,
			}
			result := tx.Model(&models.OperatingHours{}).
				Where("salon_id = ? AND day_of_week = ?", salon.ID, entry.DayOfWeek).
				Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				hours := models.OperatingHours{
					SalonID:   salon.ID,
					DayOfWeek: entry.DayOfWeek,
					IsOpen:    entry.IsOpen,
					StartTime: entry.StartTime,
					EndTime:   entry.EndTime,
				}
				if err := tx.Create(&hours).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update operating hours"})
		return
	}

	var hours []models.OperatingHours
	h.DB.Where("salon_id = ?", salon.ID).Order("day_of_week ASC").Find(&hours)
	c.JSON(http.StatusOK, gin.H{"operating_hours": hours})
}
