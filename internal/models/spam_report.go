package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/spam"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentType string

const (
	ContentProperty ContentType = "property"
	ContentBooking  ContentType = "booking"
	ContentMessage  ContentType = "message"
	ContentUser     ContentType = "user"
	ContentReview   ContentType = "review"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentProperty, ContentBooking, ContentMessage, ContentUser, ContentReview:
		return true
	}
	return false
}

type ReportType string

const (
	ReportAutomated    ReportType = "automated"
	ReportUserReported ReportType = "user_reported"
	ReportAdminFlagged ReportType = "admin_flagged"
)

type ReportCategory string

const (
	CategorySpam          ReportCategory = "spam"
	CategoryInappropriate ReportCategory = "inappropriate"
	CategoryFakeListing   ReportCategory = "fake_listing"
	CategoryDuplicate     ReportCategory = "duplicate"
	CategoryMisleading    ReportCategory = "misleading"
	CategoryOther         ReportCategory = "other"
)

func (c ReportCategory) Valid() bool {
	switch c {
	case CategorySpam, CategoryInappropriate, CategoryFakeListing,
		CategoryDuplicate, CategoryMisleading, CategoryOther:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type ReportStatus string

const (
	StatusPending       ReportStatus = "pending"
	StatusUnderReview   ReportStatus = "under_review"
	StatusConfirmed     ReportStatus = "confirmed"
	StatusFalsePositive ReportStatus = "false_positive"
	StatusDismissed     ReportStatus = "dismissed"
	StatusResolved      ReportStatus = "resolved"
)

// statusTransitions is the base status state machine. Appeal approval
// forcing false_positive is the one sanctioned bypass (see ApproveAppeal).
var statusTransitions = map[ReportStatus][]ReportStatus{
	StatusPending:     {StatusUnderReview, StatusConfirmed, StatusFalsePositive, StatusDismissed},
	StatusUnderReview: {StatusConfirmed, StatusFalsePositive, StatusDismissed},
	StatusConfirmed:   {StatusResolved},
}

// CanTransition reports whether the base status may move from one state
// to another.
func CanTransition(from, to ReportStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// resolvingStatuses are the states whose first entry stamps ResolvedAt.
func isResolving(s ReportStatus) bool {
	return s == StatusResolved || s == StatusDismissed || s == StatusFalsePositive
}

type ActionTaken string

const (
	ActionNone           ActionTaken = "none"
	ActionWarning        ActionTaken = "warning"
	ActionContentRemoved ActionTaken = "content_removed"
	ActionUserSuspended  ActionTaken = "user_suspended"
	ActionUserBanned     ActionTaken = "user_banned"
	ActionShadowban      ActionTaken = "shadowban"
)

func (a ActionTaken) Valid() bool {
	switch a {
	case ActionNone, ActionWarning, ActionContentRemoved,
		ActionUserSuspended, ActionUserBanned, ActionShadowban:
		return true
	}
	return false
}

type AppealStatus string

const (
	AppealPending  AppealStatus = "pending"
	AppealApproved AppealStatus = "approved"
	AppealDenied   AppealStatus = "denied"
)

// Appeal is the one-shot appeal sub-state of a report.
type Appeal struct {
	Submitted   bool         `json:"submitted"`
	SubmittedAt *time.Time   `json:"submitted_at,omitempty"`
	Reason      string       `json:"reason,omitempty"`
	Status      AppealStatus `json:"status,omitempty"`
	ReviewedBy  *uuid.UUID   `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time   `json:"reviewed_at,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// UserReportDetails carries the reporter-supplied context of a
// user-submitted report.
type UserReportDetails struct {
	Reason      string   `json:"reason"`
	Description string   `json:"description,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
}

// SpamReport is the central moderation entity. Detection verdicts and
// appeal state are embedded as JSONB value objects; Confidence is
// denormalized from the verdict for priority derivation and statistics.
type SpamReport struct {
	ID                uuid.UUID                                  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ContentType       ContentType                                `gorm:"size:20;not null;index" json:"content_type"`
	ContentID         string                                     `gorm:"size:64;not null;index" json:"content_id"`
	ReporterID        *uuid.UUID                                 `gorm:"type:uuid;index" json:"reporter_id,omitempty"`
	ReportedUserID    uuid.UUID                                  `gorm:"type:uuid;not null;index" json:"reported_user_id"`
	ReportType        ReportType                                 `gorm:"size:20;not null;index" json:"report_type"`
	Category          ReportCategory                             `gorm:"size:20;not null" json:"category"`
	Severity          Severity                                   `gorm:"size:10;not null;index" json:"severity"`
	Priority          int                                        `gorm:"not null;default:5;index" json:"priority"`
	Status            ReportStatus                               `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Confidence        int                                        `gorm:"not null;default:0" json:"confidence"`
	DetectionResult   datatypes.JSONType[*spam.Result]           `gorm:"type:jsonb" json:"detection_result"`
	UserReportDetails datatypes.JSONType[*UserReportDetails]     `gorm:"type:jsonb" json:"user_report_details"`
	ActionTaken       ActionTaken                                `gorm:"size:20;not null;default:'none'" json:"action_taken"`
	ReviewedBy        *uuid.UUID                                 `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt        *time.Time                                 `json:"reviewed_at,omitempty"`
	ReviewNotes       string                                     `gorm:"size:2000" json:"review_notes,omitempty"`
	Appeal            datatypes.JSONType[*Appeal]                `gorm:"type:jsonb" json:"appeal"`
	ReportedAt        time.Time                                  `gorm:"not null;index" json:"reported_at"`
	ResolvedAt        *time.Time                                 `json:"resolved_at,omitempty"`
	CreatedAt         time.Time                                  `json:"created_at"`
	UpdatedAt         time.Time                                  `json:"updated_at"`
}

func (SpamReport) TableName() string {
	return "spam_reports"
}

// BeforeSave keeps Priority derived from Severity and Confidence on
// every write path.
func (r *SpamReport) BeforeSave(_ *gorm.DB) error {
	r.RecomputePriority()
	return nil
}

// RecomputePriority derives Priority from Severity, adjusted by the
// detection confidence for automated reports, clamped to [1,10].
func (r *SpamReport) RecomputePriority() {
	var p int
	switch r.Severity {
	case SeverityCritical:
		p = 9
	case SeverityHigh:
		p = 7
	case SeverityMedium:
		p = 5
	default:
		p = 3
	}

	if r.ReportType == ReportAutomated {
		conf := float64(r.Confidence) / 100
		switch {
		case conf > 0.9:
			p += 2
		case conf > 0.7:
			p++
		case conf < 0.5:
			p--
		}
	}

	if p < 1 {
		p = 1
	}
	if p > 10 {
		p = 10
	}
	r.Priority = p
}

// MarkResolved stamps ResolvedAt on the first entry into a resolving
// status and never overwrites it.
func (r *SpamReport) MarkResolved(now time.Time) {
	if isResolving(r.Status) && r.ResolvedAt == nil {
		r.ResolvedAt = &now
	}
}

// IsUrgent reports whether the report needs immediate attention.
func (r *SpamReport) IsUrgent() bool {
	return (r.Priority >= 8 || r.Severity == SeverityCritical) && r.Status == StatusPending
}

// IsStale reports whether the report sat unreviewed for over a week.
func (r *SpamReport) IsStale(now time.Time) bool {
	return r.Status == StatusPending && now.Sub(r.ReportedAt) > 7*24*time.Hour
}

// AppealState returns the embedded appeal, never nil.
func (r *SpamReport) AppealState() *Appeal {
	if a := r.Appeal.Data(); a != nil {
		return a
	}
	return &Appeal{}
}

// SeverityForRisk maps a detection risk tier to a report severity.
func SeverityForRisk(level spam.RiskLevel) Severity {
	switch level {
	case spam.RiskHigh:
		return SeverityHigh
	case spam.RiskMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
