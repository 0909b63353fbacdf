package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/models"
	"github.com/rentora/rentora-backend/internal/spam"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// repeatOffenderFloor is the confirmed-report count that marks an
// account a repeat offender for the action policy.
const repeatOffenderFloor = 2

// detectionLogFloor is the confidence above which clean-looking content
// still gets an audit record.
const detectionLogFloor = 50

// ActivityRecorder notes one content submission for the sliding-window
// frequency signal.
type ActivityRecorder interface {
	Record(ctx context.Context, userID, contentType string) error
}

// GateDecision is the outcome of screening one content-mutation request.
type GateDecision struct {
	Action spam.Action `json:"action"`
	Result spam.Result `json:"result"`
}

// DetectionService orchestrates spam detection and persists automated
// reports. All of its failure modes are absorbed: detection never blocks
// a legitimate content mutation.
type DetectionService struct {
	db       *gorm.DB
	detector *spam.Detector
	history  spam.ReportHistory
	recorder ActivityRecorder
}

func NewDetectionService(db *gorm.DB, detector *spam.Detector, history spam.ReportHistory, recorder ActivityRecorder) *DetectionService {
	return &DetectionService{db: db, detector: detector, history: history, recorder: recorder}
}

// DetectSpam scores the content and, when the verdict is spam or
// borderline (confidence above 50), persists an automated report as an
// audit record. It never returns an error.
func (s *DetectionService) DetectSpam(ctx context.Context, content spam.Content, contentType models.ContentType, contentID string, authorID uuid.UUID) spam.Result {
	result := s.detector.Detect(ctx, content, string(contentType), authorID)

	if result.IsSpam || result.Confidence > detectionLogFloor {
		s.logDetection(ctx, contentType, contentID, authorID, result)
	}
	return result
}

// ScreenContent is the pre-submission gate. Admin authors bypass
// detection entirely.
func (s *DetectionService) ScreenContent(ctx context.Context, author *models.User, content spam.Content, contentType models.ContentType, contentID string) GateDecision {
	if author.IsAdmin() {
		return GateDecision{Action: spam.ActionAutoApprove}
	}

	result := s.DetectSpam(ctx, content, contentType, contentID, author.ID)

	// Record after scoring so the frequency signal counts prior
	// submissions only, matching the DB-backed counter.
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, author.ID.String(), string(contentType)); err != nil {
			slog.Error("activity record failed", "error", err, "user_id", author.ID.String())
		}
	}
	action := spam.RecommendedAction(result.OverallScore, spam.UserHistory{
		RepeatOffender: s.isRepeatOffender(ctx, author.ID),
	})
	return GateDecision{Action: action, Result: result}
}

func (s *DetectionService) isRepeatOffender(ctx context.Context, userID uuid.UUID) bool {
	count, err := s.history.ConfirmedCount(ctx, userID)
	if err != nil {
		slog.Error("repeat offender lookup failed", "error", err, "user_id", userID.String())
		return false
	}
	return count >= repeatOffenderFloor
}

func (s *DetectionService) logDetection(ctx context.Context, contentType models.ContentType, contentID string, authorID uuid.UUID, result spam.Result) {
	report := models.SpamReport{
		ID:              uuid.New(),
		ContentType:     contentType,
		ContentID:       contentID,
		ReportedUserID:  authorID,
		ReportType:      models.ReportAutomated,
		Category:        models.CategorySpam,
		Severity:        models.SeverityForRisk(result.RiskLevel),
		Status:          models.StatusPending,
		Confidence:      result.Confidence,
		DetectionResult: datatypes.NewJSONType(&result),
		ActionTaken:     models.ActionNone,
		ReportedAt:      time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		slog.Error("failed to persist detection record", "error", err,
			"content_type", contentType, "content_id", contentID)
	}
}
