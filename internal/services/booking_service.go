package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/dto"
	"github.com/rentora/rentora-backend/internal/models"
	"github.com/rentora/rentora-backend/internal/spam"
	"gorm.io/gorm"
)

// BookingService owns stay requests; the guest's message to the host is
// screened like any other content.
type BookingService struct {
	db          *gorm.DB
	gate        *DetectionService
	enforcement *EnforcementService
}

func NewBookingService(db *gorm.DB, gate *DetectionService, enforcement *EnforcementService) *BookingService {
	return &BookingService{db: db, gate: gate, enforcement: enforcement}
}

func (s *BookingService) Create(ctx context.Context, guest *models.User, req *dto.CreateBookingRequest) (*models.Booking, error) {
	var errs fieldErrors
	if req.PropertyID == uuid.Nil {
		errs.add("property_id", "is required")
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		errs.add("check_in", "check-in and check-out are required")
	} else if !req.CheckOut.After(req.CheckIn) {
		errs.add("check_out", "must be after check-in")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	if !guest.CanSubmitContent(time.Now()) {
		return nil, ErrAccountRestricted
	}

	var prop models.Property
	if err := s.db.WithContext(ctx).First(&prop, "id = ? AND status = ?", req.PropertyID, models.PropertyActive).Error; err != nil {
		return nil, notFoundOr(err)
	}

	booking := &models.Booking{
		ID:         uuid.New(),
		PropertyID: prop.ID,
		GuestID:    guest.ID,
		Message:    req.Message,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     models.BookingPending,
	}

	decision := s.gate.ScreenContent(ctx, guest, spam.Content{
		Message: booking.Message,
	}, models.ContentBooking, booking.ID.String())

	switch decision.Action {
	case spam.ActionAutoReject:
		return nil, ErrContentRejected
	case spam.ActionAccountSuspend:
		if err := s.enforcement.Suspend(ctx, guest.ID, SuspensionDuration); err != nil {
			slog.Error("gate suspension failed", "error", err, "user_id", guest.ID.String())
		}
		return nil, ErrContentRejected
	case spam.ActionShadowban:
		if err := s.enforcement.Shadowban(ctx, guest.ID); err != nil {
			slog.Error("gate shadowban failed", "error", err, "user_id", guest.ID.String())
		}
	}
	// A manual_review verdict files a report but the booking proceeds;
	// there is no pending_review state on bookings.

	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).Preload("Property").First(&booking, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	if booking.GuestID != actor.ID && booking.Property.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return &booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Booking, error) {
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("guest_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) Cancel(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingCancelled {
		return booking, nil
	}
	booking.Status = models.BookingCancelled
	if err := s.db.WithContext(ctx).Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}
