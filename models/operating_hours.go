package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperatingHours is one weekday's open/close window for a salon.
// Times are 24-hour "HH:MM" strings; day_of_week follows time.Weekday
// (0=Sunday, 6=Saturday). StartTime <= EndTime whenever IsOpen is true.
type OperatingHours struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SalonID   uuid.UUID `gorm:"type:uuid;not null;index" json:"salon_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"`
	// No column default: GORM skips zero-value fields that carry a default
	// tag on Create, which would silently store a closed day as open.
	IsOpen    bool      `json:"is_open"`
	StartTime string    `gorm:"not null;default:'09:00'" json:"start_time"`
	EndTime   string    `gorm:"not null;default:'18:00'" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *OperatingHours) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
