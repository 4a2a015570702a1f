package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StaffStatusActive   = "Active"
	StaffStatusInactive = "Inactive"
)

// Staff is a bookable employee of a salon. Inactive staff are excluded
// from availability calculations entirely.
type Staff struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SalonID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"salon_id"`
	Salon        Salon              `gorm:"foreignKey:SalonID" json:"-"`
	Name         string             `gorm:"not null" json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Title        string             `json:"title"` // e.g. Stylist, Therapist
	Status       string             `gorm:"default:Active" json:"status"` // Active, Inactive
	WorkDays     []StaffWorkDay     `gorm:"foreignKey:StaffID" json:"work_days,omitempty"`
	Shifts       []StaffShift       `gorm:"foreignKey:StaffID" json:"shifts,omitempty"`
	BlockedTimes []StaffBlockedTime `gorm:"foreignKey:StaffID" json:"blocked_times,omitempty"`
	Leaves       []StaffLeave       `gorm:"foreignKey:StaffID" json:"leaves,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// StaffWorkDay flags whether a staff member works at all on a given
// weekday (0=Sunday, 6=Saturday).
type StaffWorkDay struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StaffID     uuid.UUID `gorm:"type:uuid;not null;index" json:"staff_id"`
	DayOfWeek   int       `gorm:"not null" json:"day_of_week"`
	IsAvailable bool      `gorm:"default:false" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (w *StaffWorkDay) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// StaffShift is one recurring slot on a weekday. Multiple rows per day
// support split shifts (e.g. a morning and an evening block); Position
// preserves the configured order. StartTime < EndTime.
type StaffShift struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index" json:"staff_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"`
	StartTime string    `gorm:"not null" json:"start_time"`
	EndTime   string    `gorm:"not null" json:"end_time"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *StaffShift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
