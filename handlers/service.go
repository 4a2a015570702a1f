package handlers

import (
	"net/http"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceHandler struct {
	DB *gorm.DB
}

// ListSalonServices is the public menu for a salon.
func (h *ServiceHandler) ListSalonServices(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID"})
		return
	}

	query := h.DB.Preload("Category").Where("salon_id = ? AND is_active = ?", salonID, true)

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var services []models.Service
	if err := query.Order("name ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// --- Salon portal ---

func (h *ServiceHandler) ListMyServices(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	var services []models.Service
	if err := h.DB.Preload("Category").Where("salon_id = ?", salonID).Order("name ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	var req struct {
		Name            string     `json:"name" binding:"required"`
		Description     string     `json:"description"`
		DurationMinutes int        `json:"duration_minutes" binding:"required,min=5,max=480"`
		Price           float64    `json:"price" binding:"min=0"`
		CategoryID      *uuid.UUID `json:"category_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.CategoryID != nil {
		var category models.ServiceCategory
		if err := h.DB.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}
	}

	service := models.Service{
		ID:              uuid.New(),
		SalonID:         salonID.(uuid.UUID),
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	}

	if err := h.DB.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	var service models.Service
	if err := h.DB.Where("id = ? AND salon_id = ?", c.Param("id"), salonID).First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	var req struct {
		Name            *string    `json:"name"`
		Description     *string    `json:"description"`
		DurationMinutes *int       `json:"duration_minutes"`
		Price           *float64   `json:"price"`
		CategoryID      *uuid.UUID `json:"category_id"`
		IsActive        *bool      `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.DurationMinutes != nil && (*req.DurationMinutes < 5 || *req.DurationMinutes > 480) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_minutes must be between 5 and 480"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&service).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
			return
		}
	}

	h.DB.Where("id = ?", service.ID).First(&service)
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	salonID, exists := c.Get("salon_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
		return
	}

	result := h.DB.Where("id = ? AND salon_id = ?", c.Param("id"), salonID).Delete(&models.Service{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// --- Admin: shared service categories ---

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := h.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ServiceHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var existing models.ServiceCategory
	if err := h.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		return
	}

	category := models.ServiceCategory{
		ID:          uuid.New(),
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
	}

	if err := h.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *ServiceHandler) UpdateCategory(c *gin.Context) {
	var category models.ServiceCategory
	if err := h.DB.Where("id = ?", c.Param("id")).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Icon        *string `json:"icon"`
		Description *string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&category).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
	}

	h.DB.Where("id = ?", category.ID).First(&category)
	c.JSON(http.StatusOK, category)
}

func (h *ServiceHandler) DeleteCategory(c *gin.Context) {
	var category models.ServiceCategory
	if err := h.DB.Where("id = ?", c.Param("id")).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var count int64
	h.DB.Model(&models.Service{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category is in use by existing services"})
		return
	}

	if err := h.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
