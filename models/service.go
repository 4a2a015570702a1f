package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceCategory struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Icon        string         `json:"icon"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Services    []Service      `gorm:"foreignKey:CategoryID" json:"services,omitempty"`
}

func (c *ServiceCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Service is a bookable treatment offered by a salon.
type Service struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SalonID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"salon_id"`
	Salon           Salon            `gorm:"foreignKey:SalonID" json:"-"`
	CategoryID      *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category        *ServiceCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name            string           `gorm:"not null" json:"name"`
	Description     string           `json:"description"`
	DurationMinutes int              `gorm:"not null;default:30" json:"duration_minutes"`
	Price           float64          `gorm:"not null" json:"price"`
	IsActive        bool             `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
