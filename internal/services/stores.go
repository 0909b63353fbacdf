package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/models"
	"github.com/rentora/rentora-backend/internal/spam"
	"gorm.io/gorm"
)

// GORM-backed implementations of the spam package's read interfaces.

type userDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) spam.UserDirectory {
	return &userDirectory{db: db}
}

func (d *userDirectory) Lookup(ctx context.Context, userID uuid.UUID) (*spam.AccountInfo, error) {
	var user models.User
	if err := d.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &spam.AccountInfo{
		CreatedAt: user.CreatedAt,
		HasName:   user.FirstName != "" || user.LastName != "",
		HasPhone:  user.Phone != "",
		HasAvatar: user.AvatarURL != "",
	}, nil
}

type reportHistory struct {
	db *gorm.DB
}

func NewReportHistory(db *gorm.DB) spam.ReportHistory {
	return &reportHistory{db: db}
}

func (h *reportHistory) ConfirmedCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := h.db.WithContext(ctx).Model(&models.SpamReport{}).
		Where("reported_user_id = ? AND status IN ?", userID,
			[]models.ReportStatus{models.StatusConfirmed, models.StatusResolved}).
		Count(&count).Error
	return count, err
}

// dbActivityCounter counts content rows directly. It is the fallback
// when no Redis rate tracker is configured; recent writes may be
// undercounted under replication lag, which only softens detection.
type dbActivityCounter struct {
	db *gorm.DB
}

func NewDBActivityCounter(db *gorm.DB) spam.ActivityCounter {
	return &dbActivityCounter{db: db}
}

func (c *dbActivityCounter) CountSince(ctx context.Context, userID uuid.UUID, contentType string, since time.Time) (int64, error) {
	var count int64
	var err error
	switch contentType {
	case string(models.ContentProperty):
		err = c.db.WithContext(ctx).Model(&models.Property{}).
			Where("owner_id = ? AND created_at >= ?", userID, since).
			Count(&count).Error
	case string(models.ContentBooking):
		err = c.db.WithContext(ctx).Model(&models.Booking{}).
			Where("guest_id = ? AND created_at >= ?", userID, since).
			Count(&count).Error
	default:
		return 0, nil
	}
	return count, err
}
