package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/models"
	"github.com/rentora/rentora-backend/internal/spam"
)

// CheckContentResult is the admin-facing output of a manual detection
// run.
type CheckContentResult struct {
	Result            spam.Result `json:"result"`
	RecommendedAction spam.Action `json:"recommended_action"`
	Summary           string      `json:"summary"`
}

// CheckContent re-runs detection against existing content on demand.
func (s *DetectionService) CheckContent(ctx context.Context, contentType models.ContentType, contentID string) (*CheckContentResult, error) {
	if !contentType.Valid() {
		return nil, &ValidationError{Fields: fieldErrors{{Field: "content_type", Message: "unknown content type"}}}
	}
	id, err := uuid.Parse(contentID)
	if err != nil {
		return nil, &ValidationError{Fields: fieldErrors{{Field: "content_id", Message: "must be a valid UUID"}}}
	}

	content, authorID, err := s.loadContent(ctx, contentType, id)
	if err != nil {
		return nil, err
	}

	result := s.DetectSpam(ctx, content, contentType, contentID, authorID)
	action := spam.RecommendedAction(result.OverallScore, spam.UserHistory{
		RepeatOffender: s.isRepeatOffender(ctx, authorID),
	})

	return &CheckContentResult{
		Result:            result,
		RecommendedAction: action,
		Summary: fmt.Sprintf("risk %s, confidence %d/100, recommended action %s",
			result.RiskLevel, result.Confidence, action),
	}, nil
}

func (s *DetectionService) loadContent(ctx context.Context, contentType models.ContentType, id uuid.UUID) (spam.Content, uuid.UUID, error) {
	switch contentType {
	case models.ContentProperty:
		var p models.Property
		if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
			return spam.Content{}, uuid.Nil, notFoundOr(err)
		}
		return spam.Content{Title: p.Title, Description: p.Description}, p.OwnerID, nil
	case models.ContentBooking:
		var b models.Booking
		if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
			return spam.Content{}, uuid.Nil, notFoundOr(err)
		}
		return spam.Content{Message: b.Message}, b.GuestID, nil
	case models.ContentUser:
		var u models.User
		if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
			return spam.Content{}, uuid.Nil, notFoundOr(err)
		}
		return spam.Content{Name: u.FirstName + " " + u.LastName}, u.ID, nil
	default:
		return spam.Content{}, uuid.Nil, ErrNotFound
	}
}
