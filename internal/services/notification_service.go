package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/models"
	"gorm.io/gorm"
)

// NotificationService writes in-app notifications. It stands in for the
// external delivery channels (email/SMS), which are out of scope.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, kind, body string) error {
	n := models.Notification{
		ID:     uuid.New(),
		UserID: userID,
		Kind:   kind,
		Body:   body,
	}
	return s.db.WithContext(ctx).Create(&n).Error
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	var items []models.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	return items, err
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
