package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Salon struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string           `gorm:"not null" json:"name"`
	Slug           string           `gorm:"uniqueIndex;not null" json:"slug"`
	OwnerID        uuid.UUID        `gorm:"type:uuid;not null" json:"owner_id"`
	Owner          User             `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Description    string           `json:"description"`
	Address        string           `json:"address"`
	City           string           `json:"city"`
	PostCode       string           `json:"post_code"`
	Latitude       float64          `gorm:"not null" json:"latitude"`
	Longitude      float64          `gorm:"not null" json:"longitude"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	Timezone       string           `gorm:"default:Europe/London" json:"timezone"`
	IsActive       bool             `gorm:"default:true" json:"is_active"`
	OperatingHours []OperatingHours `gorm:"foreignKey:SalonID" json:"operating_hours,omitempty"`
	Staff          []Staff          `gorm:"foreignKey:SalonID" json:"staff,omitempty"`
	Services       []Service        `gorm:"foreignKey:SalonID" json:"services,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
