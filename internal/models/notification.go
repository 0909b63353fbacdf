package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message to a user. Moderation warnings land
// here; external delivery channels are out of scope.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string    `gorm:"size:50;not null" json:"kind"`
	Body      string    `gorm:"size:1000" json:"body"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
