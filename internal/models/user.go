package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
	UserBanned    UserStatus = "banned"
)

// User is a marketplace account. The profile fields double as the
// completeness inputs for spam risk scoring; the status fields are the
// enforcement surface.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email          string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	Role           string         `gorm:"size:20;default:'user'" json:"role"`
	FirstName      string         `gorm:"size:100" json:"first_name"`
	LastName       string         `gorm:"size:100" json:"last_name"`
	Phone          string         `gorm:"size:30" json:"phone"`
	AvatarURL      string         `gorm:"size:512" json:"avatar_url"`
	Status         UserStatus     `gorm:"size:20;not null;default:'active';index" json:"status"`
	SuspendedUntil *time.Time     `json:"suspended_until,omitempty"`
	ShadowBanned   bool           `gorm:"not null;default:false" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// CanSubmitContent reports whether the account may create listings or
// bookings right now. A lapsed suspension counts as active again.
func (u *User) CanSubmitContent(now time.Time) bool {
	switch u.Status {
	case UserBanned:
		return false
	case UserSuspended:
		return u.SuspendedUntil != nil && now.After(*u.SuspendedUntil)
	default:
		return true
	}
}
