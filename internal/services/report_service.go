package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/dto"
	"github.com/rentora/rentora-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	urgentCap       = 20
	bulkReviewMax   = 50
)

// ReportService owns the report lifecycle: submission, listing, review,
// bulk review, appeals, and statistics.
type ReportService struct {
	db          *gorm.DB
	enforcement *EnforcementService
}

func NewReportService(db *gorm.DB, enforcement *EnforcementService) *ReportService {
	return &ReportService{db: db, enforcement: enforcement}
}

// SubmitReport creates a user-submitted report. The duplicate-report
// guard runs as a check-then-insert inside one transaction; a raced
// duplicate yields a second row, not corrupted state.
func (s *ReportService) SubmitReport(ctx context.Context, reporterID uuid.UUID, req *dto.CreateReportRequest) (*models.SpamReport, error) {
	var errs fieldErrors
	contentType := models.ContentType(req.ContentType)
	if !contentType.Valid() {
		errs.add("content_type", "must be one of property, booking, message, user, review")
	}
	category := models.ReportCategory(req.Category)
	if !category.Valid() {
		errs.add("category", "must be one of spam, inappropriate, fake_listing, duplicate, misleading, other")
	}
	if strings.TrimSpace(req.Reason) == "" {
		errs.add("reason", "is required")
	}
	if strings.TrimSpace(req.ContentID) == "" {
		errs.add("content_id", "is required")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	reportedUserID, err := s.resolveContentOwner(ctx, contentType, req.ContentID)
	if err != nil {
		return nil, err
	}

	report := models.SpamReport{
		ID:             uuid.New(),
		ContentType:    contentType,
		ContentID:      req.ContentID,
		ReporterID:     &reporterID,
		ReportedUserID: reportedUserID,
		ReportType:     models.ReportUserReported,
		Category:       category,
		Severity:       severityForCategory(category),
		Status:         models.StatusPending,
		UserReportDetails: datatypes.NewJSONType(&models.UserReportDetails{
			Reason:      req.Reason,
			Description: req.Description,
			Evidence:    req.Evidence,
		}),
		ActionTaken: models.ActionNone,
		ReportedAt:  time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.ReportStatus
		if err := tx.Model(&models.SpamReport{}).
			Where("content_type = ? AND content_id = ? AND reporter_id = ?",
				contentType, req.ContentID, reporterID).
			Pluck("status", &existing).Error; err != nil {
			return err
		}
		if duplicateReport(existing) {
			return ErrDuplicateReport
		}
		return tx.Create(&report).Error
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// duplicateReport reports whether any of the reporter's earlier reports
// for the same content is still open. Resolved, dismissed and
// false-positive reports do not block a new one.
func duplicateReport(existing []models.ReportStatus) bool {
	for _, s := range existing {
		if s == models.StatusPending || s == models.StatusUnderReview {
			return true
		}
	}
	return false
}

// resolveContentOwner checks the referenced content exists and returns
// the user the report is against.
func (s *ReportService) resolveContentOwner(ctx context.Context, contentType models.ContentType, contentID string) (uuid.UUID, error) {
	id, err := uuid.Parse(contentID)
	if err != nil {
		return uuid.Nil, &ValidationError{Fields: []dto.FieldError{{Field: "content_id", Message: "must be a valid UUID"}}}
	}

	switch contentType {
	case models.ContentProperty:
		var p models.Property
		if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
			return uuid.Nil, notFoundOr(err)
		}
		return p.OwnerID, nil
	case models.ContentBooking:
		var b models.Booking
		if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
			return uuid.Nil, notFoundOr(err)
		}
		return b.GuestID, nil
	case models.ContentUser:
		var u models.User
		if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
			return uuid.Nil, notFoundOr(err)
		}
		return u.ID, nil
	default:
		// No store for messages/reviews yet; the referenced content
		// cannot be verified.
		return uuid.Nil, ErrNotFound
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// severityForCategory sets the initial severity of user reports.
func severityForCategory(c models.ReportCategory) models.Severity {
	switch c {
	case models.CategorySpam, models.CategoryFakeListing:
		return models.SeverityHigh
	case models.CategoryInappropriate, models.CategoryMisleading:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// ListReports returns a filtered, sorted page of reports plus the total.
func (s *ReportService) ListReports(ctx context.Context, q *dto.ListReportsQuery) ([]models.SpamReport, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.SpamReport{})
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Severity != "" {
		query = query.Where("severity = ?", q.Severity)
	}
	if q.ContentType != "" {
		query = query.Where("content_type = ?", q.ContentType)
	}
	if q.ReportType != "" {
		query = query.Where("report_type = ?", q.ReportType)
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

	var reports []models.SpamReport
	err := query.Order(sortClause(q.SortBy, q.SortDir)).
		Limit(limit).Offset((page - 1) * limit).
		Find(&reports).Error
	return reports, total, err
}

// sortClause whitelists sortable columns.
func sortClause(by, dir string) string {
	switch by {
	case "priority", "severity", "reported_at", "resolved_at", "confidence":
	default:
		by = "reported_at"
	}
	if dir != "asc" {
		dir = "desc"
	}
	return by + " " + dir
}

// UrgentReports returns pending reports matching the urgent predicate,
// highest priority first, capped at 20.
func (s *ReportService) UrgentReports(ctx context.Context) ([]models.SpamReport, error) {
	var reports []models.SpamReport
	err := s.db.WithContext(ctx).
		Where("status = ? AND (priority >= 8 OR severity = ?)", models.StatusPending, models.SeverityCritical).
		Order("priority DESC, reported_at ASC").
		Limit(urgentCap).
		Find(&reports).Error
	return reports, err
}

// ReportsAgainstUser returns open reports against a user.
func (s *ReportService) ReportsAgainstUser(ctx context.Context, userID uuid.UUID) ([]models.SpamReport, error) {
	var reports []models.SpamReport
	err := s.db.WithContext(ctx).
		Where("reported_user_id = ? AND status IN ?", userID,
			[]models.ReportStatus{models.StatusPending, models.StatusUnderReview}).
		Order("reported_at DESC").
		Find(&reports).Error
	return reports, err
}

// ReviewReport applies an admin decision to one report. The review
// commits even if the optional enforcement action cannot be applied.
func (s *ReportService) ReviewReport(ctx context.Context, reportID, reviewerID uuid.UUID, req *dto.ReviewReportRequest) (*models.SpamReport, error) {
	newStatus := models.ReportStatus(req.Status)
	var errs fieldErrors
	switch newStatus {
	case models.StatusConfirmed, models.StatusFalsePositive, models.StatusDismissed:
	default:
		errs.add("status", "must be one of confirmed, false_positive, dismissed")
	}
	action := models.ActionNone
	if req.Action != "" {
		action = models.ActionTaken(req.Action)
		if !action.Valid() {
			errs.add("action", "unknown enforcement action")
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	var report models.SpamReport
	if err := s.db.WithContext(ctx).First(&report, "id = ?", reportID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if !models.CanTransition(report.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	report.Status = newStatus
	report.ReviewedBy = &reviewerID
	report.ReviewedAt = &now
	report.ReviewNotes = req.Notes
	report.MarkResolved(now)

	if action != models.ActionNone {
		s.enforcement.Apply(ctx, &report, action)
	}

	if err := s.db.WithContext(ctx).Save(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// BulkReview reviews up to 50 reports with the same decision. Each
// report is processed independently; one failure never rolls back the
// others.
func (s *ReportService) BulkReview(ctx context.Context, reviewerID uuid.UUID, req *dto.BulkReviewRequest) (*dto.BulkReviewResponse, error) {
	if len(req.ReportIDs) == 0 || len(req.ReportIDs) > bulkReviewMax {
		return nil, &ValidationError{Fields: []dto.FieldError{
			{Field: "report_ids", Message: "must contain between 1 and 50 report IDs"},
		}}
	}

	single := &dto.ReviewReportRequest{Status: req.Status, Notes: req.Notes, Action: req.Action}
	result := &dto.BulkReviewResponse{}
	for _, id := range req.ReportIDs {
		if _, err := s.ReviewReport(ctx, id, reviewerID, single); err != nil {
			slog.Warn("bulk review item failed", "report_id", id.String(), "error", err)
			result.Failed++
			continue
		}
		result.Successful++
	}
	return result, nil
}

// SubmitAppeal records the reported user's one-shot appeal.
func (s *ReportService) SubmitAppeal(ctx context.Context, reportID, userID uuid.UUID, reason string) (*models.SpamReport, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &ValidationError{Fields: []dto.FieldError{{Field: "reason", Message: "is required"}}}
	}

	var report models.SpamReport
	if err := s.db.WithContext(ctx).First(&report, "id = ?", reportID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if err := appealGate(&report, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	report.Appeal = datatypes.NewJSONType(&models.Appeal{
		Submitted:   true,
		SubmittedAt: &now,
		Reason:      reason,
		Status:      models.AppealPending,
	})

	if err := s.db.WithContext(ctx).Save(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// appealGate checks whether the user may appeal the report: only the
// reported user, only once, and only after the report was confirmed.
func appealGate(report *models.SpamReport, userID uuid.UUID) error {
	if report.ReportedUserID != userID {
		return ErrForbidden
	}
	if report.Status != models.StatusConfirmed && report.Status != models.StatusResolved {
		return ErrInvalidTransition
	}
	if report.AppealState().Submitted {
		return ErrAlreadyAppealed
	}
	return nil
}

// ReviewAppeal resolves a pending appeal. Approval is the one sanctioned
// revision of a terminal status: the report is forced to false_positive
// and ResolvedAt is restamped.
func (s *ReportService) ReviewAppeal(ctx context.Context, reportID, reviewerID uuid.UUID, req *dto.ReviewAppealRequest) (*models.SpamReport, error) {
	var decision models.AppealStatus
	switch req.Status {
	case "approved":
		decision = models.AppealApproved
	case "rejected":
		decision = models.AppealDenied
	default:
		return nil, &ValidationError{Fields: []dto.FieldError{
			{Field: "status", Message: "must be approved or rejected"},
		}}
	}

	var report models.SpamReport
	if err := s.db.WithContext(ctx).First(&report, "id = ?", reportID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if err := applyAppealDecision(&report, decision, reviewerID, req.Notes, time.Now()); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// applyAppealDecision resolves a pending appeal in place. Approval is
// the one sanctioned revision of a terminal status: the report is
// forced to false_positive and ResolvedAt is restamped.
func applyAppealDecision(report *models.SpamReport, decision models.AppealStatus, reviewerID uuid.UUID, notes string, now time.Time) error {
	appeal := report.AppealState()
	if !appeal.Submitted || appeal.Status != models.AppealPending {
		return ErrInvalidTransition
	}

	appeal.Status = decision
	appeal.ReviewedBy = &reviewerID
	appeal.ReviewedAt = &now
	appeal.Notes = notes
	report.Appeal = datatypes.NewJSONType(appeal)

	if decision == models.AppealApproved {
		report.Status = models.StatusFalsePositive
		report.ResolvedAt = &now
	}
	return nil
}

// ParsePeriod maps the statistics period parameter to a duration.
func ParsePeriod(period string) (time.Duration, error) {
	switch period {
	case "", "7d":
		return 7 * 24 * time.Hour, nil
	case "1d":
		return 24 * time.Hour, nil
	case "30d":
		return 30 * 24 * time.Hour, nil
	case "90d":
		return 90 * 24 * time.Hour, nil
	default:
		return 0, &ValidationError{Fields: []dto.FieldError{
			{Field: "period", Message: "must be one of 1d, 7d, 30d, 90d"},
		}}
	}
}

// Statistics aggregates report counts, average detection confidence and
// the most-reported users over the period.
func (s *ReportService) Statistics(ctx context.Context, period string) (*dto.StatisticsResponse, error) {
	window, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = "7d"
	}
	since := time.Now().Add(-window)

	base := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&models.SpamReport{}).Where("reported_at >= ?", since)
	}

	resp := &dto.StatisticsResponse{
		Period:       period,
		ByStatus:     make(map[string]int64),
		BySeverity:   make(map[string]int64),
		ByReportType: make(map[string]int64),
	}

	if err := base().Count(&resp.TotalReports).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string
		Count int64
	}
	for column, out := range map[string]map[string]int64{
		"status":      resp.ByStatus,
		"severity":    resp.BySeverity,
		"report_type": resp.ByReportType,
	} {
		var rows []bucket
		if err := base().Select(column + " AS key, COUNT(*) AS count").Group(column).Scan(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			out[r.Key] = r.Count
		}
	}

	var avg *float64
	if err := base().Where("report_type = ?", models.ReportAutomated).
		Select("AVG(confidence)").Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		resp.AverageConfidence = *avg
	}

	var top []dto.ReportedUserStat
	if err := base().Select("reported_user_id AS user_id, COUNT(*) AS count").
		Group("reported_user_id").
		Order("count DESC").
		Limit(5).
		Scan(&top).Error; err != nil {
		return nil, err
	}
	resp.TopReportedUsers = top

	return resp, nil
}
