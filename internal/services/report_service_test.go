package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/models"
	"gorm.io/datatypes"
)

func TestDuplicateReport(t *testing.T) {
	cases := []struct {
		name     string
		existing []models.ReportStatus
		want     bool
	}{
		{"no earlier reports", nil, false},
		{"earlier report pending", []models.ReportStatus{models.StatusPending}, true},
		{"earlier report under review", []models.ReportStatus{models.StatusUnderReview}, true},
		{"earlier report confirmed", []models.ReportStatus{models.StatusConfirmed}, false},
		{"earlier report resolved", []models.ReportStatus{models.StatusResolved}, false},
		{"earlier report dismissed", []models.ReportStatus{models.StatusDismissed}, false},
		{"earlier report false positive", []models.ReportStatus{models.StatusFalsePositive}, false},
		{"closed then reopened by another pending", []models.ReportStatus{models.StatusDismissed, models.StatusPending}, true},
	}
	for _, tc := range cases {
		if got := duplicateReport(tc.existing); got != tc.want {
			t.Fatalf("%s: duplicateReport = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAppealGate(t *testing.T) {
	reportedUser := uuid.New()
	someoneElse := uuid.New()

	cases := []struct {
		name   string
		report models.SpamReport
		userID uuid.UUID
		want   error
	}{
		{
			"confirmed report, reported user",
			models.SpamReport{ReportedUserID: reportedUser, Status: models.StatusConfirmed},
			reportedUser,
			nil,
		},
		{
			"resolved report, reported user",
			models.SpamReport{ReportedUserID: reportedUser, Status: models.StatusResolved},
			reportedUser,
			nil,
		},
		{
			"someone else's report",
			models.SpamReport{ReportedUserID: reportedUser, Status: models.StatusConfirmed},
			someoneElse,
			ErrForbidden,
		},
		{
			"report still pending",
			models.SpamReport{ReportedUserID: reportedUser, Status: models.StatusPending},
			reportedUser,
			ErrInvalidTransition,
		},
		{
			"report dismissed",
			models.SpamReport{ReportedUserID: reportedUser, Status: models.StatusDismissed},
			reportedUser,
			ErrInvalidTransition,
		},
	}
	for _, tc := range cases {
		if got := appealGate(&tc.report, tc.userID); !errors.Is(got, tc.want) {
			t.Fatalf("%s: appealGate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAppealGate_SingleShot(t *testing.T) {
	now := time.Now()
	report := models.SpamReport{
		ReportedUserID: uuid.New(),
		Status:         models.StatusConfirmed,
		Appeal: datatypes.NewJSONType(&models.Appeal{
			Submitted:   true,
			SubmittedAt: &now,
			Status:      models.AppealPending,
		}),
	}

	if got := appealGate(&report, report.ReportedUserID); !errors.Is(got, ErrAlreadyAppealed) {
		t.Fatalf("second appeal allowed: %v", got)
	}
}

func TestApplyAppealDecision_ApprovedReversesReport(t *testing.T) {
	firstResolved := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	reviewTime := firstResolved.Add(72 * time.Hour)
	reviewer := uuid.New()

	report := models.SpamReport{
		ReportedUserID: uuid.New(),
		Status:         models.StatusResolved,
		ResolvedAt:     &firstResolved,
		Appeal: datatypes.NewJSONType(&models.Appeal{
			Submitted: true,
			Status:    models.AppealPending,
			Reason:    "the listing is mine and genuine",
		}),
	}

	if err := applyAppealDecision(&report, models.AppealApproved, reviewer, "verified ownership", reviewTime); err != nil {
		t.Fatalf("applyAppealDecision failed: %v", err)
	}

	if report.Status != models.StatusFalsePositive {
		t.Fatalf("status = %s, want false_positive", report.Status)
	}
	if report.ResolvedAt == nil || !report.ResolvedAt.Equal(reviewTime) {
		t.Fatalf("ResolvedAt = %v, want restamped to %v", report.ResolvedAt, reviewTime)
	}

	appeal := report.AppealState()
	if appeal.Status != models.AppealApproved {
		t.Fatalf("appeal status = %s, want approved", appeal.Status)
	}
	if appeal.ReviewedBy == nil || *appeal.ReviewedBy != reviewer {
		t.Fatalf("appeal reviewer = %v, want %s", appeal.ReviewedBy, reviewer)
	}
	if appeal.Notes != "verified ownership" {
		t.Fatalf("appeal notes = %q", appeal.Notes)
	}
}

func TestApplyAppealDecision_DeniedLeavesReport(t *testing.T) {
	firstResolved := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	report := models.SpamReport{
		ReportedUserID: uuid.New(),
		Status:         models.StatusConfirmed,
		ResolvedAt:     &firstResolved,
		Appeal: datatypes.NewJSONType(&models.Appeal{
			Submitted: true,
			Status:    models.AppealPending,
		}),
	}

	if err := applyAppealDecision(&report, models.AppealDenied, uuid.New(), "", time.Now()); err != nil {
		t.Fatalf("applyAppealDecision failed: %v", err)
	}

	if report.Status != models.StatusConfirmed {
		t.Fatalf("denial changed report status to %s", report.Status)
	}
	if !report.ResolvedAt.Equal(firstResolved) {
		t.Fatalf("denial restamped ResolvedAt to %v", report.ResolvedAt)
	}
	if report.AppealState().Status != models.AppealDenied {
		t.Fatalf("appeal status = %s, want denied", report.AppealState().Status)
	}
}

func TestApplyAppealDecision_RequiresPendingAppeal(t *testing.T) {
	noAppeal := models.SpamReport{Status: models.StatusConfirmed}
	if err := applyAppealDecision(&noAppeal, models.AppealApproved, uuid.New(), "", time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("review without an appeal: %v", err)
	}

	decided := models.SpamReport{
		Status: models.StatusFalsePositive,
		Appeal: datatypes.NewJSONType(&models.Appeal{
			Submitted: true,
			Status:    models.AppealApproved,
		}),
	}
	if err := applyAppealDecision(&decided, models.AppealDenied, uuid.New(), "", time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("re-review of a decided appeal: %v", err)
	}
}

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		period string
		want   time.Duration
	}{
		{"", 7 * 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"30d", 30 * 24 * time.Hour},
		{"90d", 90 * 24 * time.Hour},
	}
	for _, tc := range cases {
		got, err := ParsePeriod(tc.period)
		if err != nil {
			t.Fatalf("ParsePeriod(%q) failed: %v", tc.period, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePeriod(%q) = %v, want %v", tc.period, got, tc.want)
		}
	}
}

func TestParsePeriod_Invalid(t *testing.T) {
	_, err := ParsePeriod("365d")
	if err == nil {
		t.Fatal("invalid period accepted")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %T", err)
	}
}
