package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

type Booking struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingNumber string         `gorm:"uniqueIndex;not null" json:"booking_number"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User          User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SalonID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"salon_id"`
	Salon         Salon          `gorm:"foreignKey:SalonID" json:"salon,omitempty"`
	StaffID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"staff_id"`
	Staff         Staff          `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	ServiceID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"service_id"`
	Service       Service        `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Date          time.Time      `gorm:"not null;index" json:"date"`
	StartTime     string         `gorm:"not null" json:"start_time"`
	EndTime       string         `gorm:"not null" json:"end_time"`
	Status        BookingStatus  `gorm:"default:pending" json:"status"`
	Price         float64        `gorm:"not null" json:"price"`
	Notes         string         `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.BookingNumber == "" {
		b.BookingNumber = "BK" + time.Now().Format("20060102150405") + b.ID.String()[:8]
	}
	return nil
}

// AllowedTransitions defines the valid booking status state machine.
var AllowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
	BookingStatusNoShow:    {},
}

// IsValidTransition checks if a status transition is allowed.
func IsValidTransition(from, to BookingStatus) bool {
	allowed, exists := AllowedTransitions[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// BlocksAvailability reports whether a booking in this status should be
// treated as a blocked interval when computing staff availability.
func (s BookingStatus) BlocksAvailability() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// BlockingStatuses returns the statuses for which BlocksAvailability is
// true, for use in booking queries that feed availability.
func BlockingStatuses() []BookingStatus {
	all := []BookingStatus{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled, BookingStatusNoShow,
	}
	var blocking []BookingStatus
	for _, s := range all {
		if s.BlocksAvailability() {
			blocking = append(blocking, s)
		}
	}
	return blocking
}
