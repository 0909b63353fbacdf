package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/models"
	"gorm.io/gorm"
)

// SuspensionDuration is the fixed length of a user_suspended action.
const SuspensionDuration = 7 * 24 * time.Hour

// EnforcementService applies moderation actions to users and content.
// Lookup failures are absorbed as no-ops so the enclosing review still
// commits.
type EnforcementService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewEnforcementService(db *gorm.DB, notifier *NotificationService) *EnforcementService {
	return &EnforcementService{db: db, notifier: notifier}
}

// Apply executes the action against the report's offending user and
// content, and records ActionTaken on the report regardless of which
// branch ran. The caller persists the report.
func (s *EnforcementService) Apply(ctx context.Context, report *models.SpamReport, action models.ActionTaken) {
	report.ActionTaken = action

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", report.ReportedUserID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("enforcement user lookup failed", "error", err,
				"user_id", report.ReportedUserID.String())
		}
		return
	}

	var err error
	switch action {
	case models.ActionWarning:
		err = s.notifier.Notify(ctx, user.ID, "moderation_warning",
			"Your content was reported for violating our guidelines. Repeated violations may lead to suspension.")
	case models.ActionContentRemoved:
		err = s.removeContent(ctx, report)
	case models.ActionUserSuspended:
		err = s.Suspend(ctx, user.ID, SuspensionDuration)
	case models.ActionUserBanned:
		err = s.db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
			"status":          models.UserBanned,
			"suspended_until": nil,
		}).Error
	case models.ActionShadowban:
		err = s.Shadowban(ctx, user.ID)
	}

	if err != nil {
		slog.Error("enforcement action failed", "error", err,
			"action", string(action), "report_id", report.ID.String())
	}
}

// removeContent marks the referenced content removed or cancelled
// depending on its type.
func (s *EnforcementService) removeContent(ctx context.Context, report *models.SpamReport) error {
	id, err := uuid.Parse(report.ContentID)
	if err != nil {
		return err
	}

	switch report.ContentType {
	case models.ContentProperty:
		return s.db.WithContext(ctx).Model(&models.Property{}).
			Where("id = ?", id).
			Update("status", models.PropertyRemoved).Error
	case models.ContentBooking:
		return s.db.WithContext(ctx).Model(&models.Booking{}).
			Where("id = ?", id).
			Update("status", models.BookingCancelled).Error
	default:
		slog.Warn("no removable content for type", "content_type", string(report.ContentType))
		return nil
	}
}

// Suspend sets the user suspended for the given duration.
func (s *EnforcementService) Suspend(ctx context.Context, userID uuid.UUID, d time.Duration) error {
	until := time.Now().Add(d)
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"status":          models.UserSuspended,
			"suspended_until": until,
		}).Error
}

// Shadowban flags the user; they stay active but their content is
// deprioritized for other users.
func (s *EnforcementService) Shadowban(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("shadow_banned", true).Error
}
