package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyStatus string

const (
	PropertyActive        PropertyStatus = "active"
	PropertyPendingReview PropertyStatus = "pending_review"
	PropertyRemoved       PropertyStatus = "removed"
)

// Property is a rental listing.
type Property struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title          string         `gorm:"not null;size:200" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	City           string         `gorm:"size:100;index" json:"city"`
	Address        string         `gorm:"size:255" json:"address"`
	NightlyCents   int64          `gorm:"not null" json:"nightly_cents"`
	MaxGuests      int            `gorm:"default:1" json:"max_guests"`
	Status         PropertyStatus `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Owner          User           `gorm:"foreignKey:OwnerID" json:"-"`
}
