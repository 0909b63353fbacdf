package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/dto"
	"github.com/rentora/rentora-backend/internal/models"
	"github.com/rentora/rentora-backend/internal/spam"
	"gorm.io/gorm"
)

// PropertyService owns listing CRUD with the pre-submission spam gate on
// every content mutation.
type PropertyService struct {
	db          *gorm.DB
	gate        *DetectionService
	enforcement *EnforcementService
}

func NewPropertyService(db *gorm.DB, gate *DetectionService, enforcement *EnforcementService) *PropertyService {
	return &PropertyService{db: db, gate: gate, enforcement: enforcement}
}

func (s *PropertyService) Create(ctx context.Context, owner *models.User, req *dto.CreatePropertyRequest) (*models.Property, error) {
	var errs fieldErrors
	if strings.TrimSpace(req.Title) == "" {
		errs.add("title", "is required")
	}
	if req.NightlyCents <= 0 {
		errs.add("nightly_cents", "must be positive")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	if !owner.CanSubmitContent(time.Now()) {
		return nil, ErrAccountRestricted
	}

	prop := &models.Property{
		ID:           uuid.New(),
		OwnerID:      owner.ID,
		Title:        req.Title,
		Description:  req.Description,
		City:         req.City,
		Address:      req.Address,
		NightlyCents: req.NightlyCents,
		MaxGuests:    req.MaxGuests,
		Status:       models.PropertyActive,
	}

	if err := s.applyGate(ctx, owner, prop); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(prop).Error; err != nil {
		return nil, err
	}
	return prop, nil
}

// applyGate screens the listing text and applies the recommended
// action: reject, flag for review, or shadow-restrict the author.
func (s *PropertyService) applyGate(ctx context.Context, owner *models.User, prop *models.Property) error {
	decision := s.gate.ScreenContent(ctx, owner, spam.Content{
		Title:       prop.Title,
		Description: prop.Description,
	}, models.ContentProperty, prop.ID.String())

	switch decision.Action {
	case spam.ActionAutoReject:
		return ErrContentRejected
	case spam.ActionAccountSuspend:
		if err := s.enforcement.Suspend(ctx, owner.ID, SuspensionDuration); err != nil {
			slog.Error("gate suspension failed", "error", err, "user_id", owner.ID.String())
		}
		return ErrContentRejected
	case spam.ActionShadowban:
		if err := s.enforcement.Shadowban(ctx, owner.ID); err != nil {
			slog.Error("gate shadowban failed", "error", err, "user_id", owner.ID.String())
		}
	case spam.ActionManualReview:
		prop.Status = models.PropertyPendingReview
	}
	return nil
}

func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var prop models.Property
	if err := s.db.WithContext(ctx).First(&prop, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &prop, nil
}

// List returns active listings, excluding those of shadow-banned owners.
func (s *PropertyService) List(ctx context.Context, q *dto.ListPropertiesQuery) ([]models.Property, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Property{}).
		Joins("JOIN users ON users.id = properties.owner_id").
		Where("properties.status = ? AND users.shadow_banned = false", models.PropertyActive)
	if q.City != "" {
		query = query.Where("properties.city = ?", q.City)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var props []models.Property
	err := query.Order("properties.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&props).Error
	return props, total, err
}

func (s *PropertyService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *dto.UpdatePropertyRequest) (*models.Property, error) {
	prop, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if prop.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		prop.Title = *req.Title
	}
	if req.Description != nil {
		prop.Description = *req.Description
	}
	if req.City != nil {
		prop.City = *req.City
	}
	if req.Address != nil {
		prop.Address = *req.Address
	}
	if req.NightlyCents != nil {
		prop.NightlyCents = *req.NightlyCents
	}
	if req.MaxGuests != nil {
		prop.MaxGuests = *req.MaxGuests
	}

	// Edits go through the same gate; a removed listing stays removed.
	if prop.Status == models.PropertyPendingReview {
		prop.Status = models.PropertyActive
	}
	if prop.Status == models.PropertyActive {
		if err := s.applyGate(ctx, actor, prop); err != nil {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).Save(prop).Error; err != nil {
		return nil, err
	}
	return prop, nil
}

func (s *PropertyService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	prop, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if prop.OwnerID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(prop).Error
}
