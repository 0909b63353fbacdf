package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a guest's stay request on a property. The message to the
// host is scannable content.
type Booking struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PropertyID uuid.UUID      `gorm:"type:uuid;not null;index" json:"property_id"`
	GuestID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"guest_id"`
	Message    string         `gorm:"size:2000" json:"message"`
	CheckIn    time.Time      `gorm:"not null" json:"check_in"`
	CheckOut   time.Time      `gorm:"not null" json:"check_out"`
	Status     BookingStatus  `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Property   Property       `gorm:"foreignKey:PropertyID" json:"-"`
	Guest      User           `gorm:"foreignKey:GuestID" json:"-"`
}
