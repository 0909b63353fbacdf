package models

import (
	"testing"
	"time"

	"github.com/rentora/rentora-backend/internal/spam"
	"gorm.io/datatypes"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from ReportStatus
		to   ReportStatus
		want bool
	}{
		{StatusPending, StatusUnderReview, true},
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusFalsePositive, true},
		{StatusPending, StatusDismissed, true},
		{StatusPending, StatusResolved, false},
		{StatusUnderReview, StatusConfirmed, true},
		{StatusUnderReview, StatusDismissed, true},
		{StatusUnderReview, StatusPending, false},
		{StatusConfirmed, StatusResolved, true},
		{StatusConfirmed, StatusDismissed, false},
		{StatusResolved, StatusConfirmed, false},
		{StatusDismissed, StatusPending, false},
		{StatusFalsePositive, StatusResolved, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRecomputePriority(t *testing.T) {
	cases := []struct {
		name       string
		severity   Severity
		reportType ReportType
		confidence int
		want       int
	}{
		{"critical manual", SeverityCritical, ReportUserReported, 0, 9},
		{"high manual", SeverityHigh, ReportUserReported, 0, 7},
		{"medium manual", SeverityMedium, ReportUserReported, 0, 5},
		{"low manual", SeverityLow, ReportUserReported, 0, 3},
		{"manual ignores confidence", SeverityMedium, ReportUserReported, 99, 5},
		{"automated very confident", SeverityCritical, ReportAutomated, 95, 10},
		{"automated confident", SeverityHigh, ReportAutomated, 80, 8},
		{"automated middling", SeverityMedium, ReportAutomated, 60, 5},
		{"automated weak", SeverityLow, ReportAutomated, 30, 2},
		{"clamped high", SeverityCritical, ReportAutomated, 100, 10},
	}
	for _, tc := range cases {
		r := SpamReport{
			Severity:   tc.severity,
			ReportType: tc.reportType,
			Confidence: tc.confidence,
		}
		r.RecomputePriority()
		if r.Priority != tc.want {
			t.Fatalf("%s: priority = %d, want %d", tc.name, r.Priority, tc.want)
		}
	}
}

func TestMarkResolved_FirstEntryOnly(t *testing.T) {
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	r := SpamReport{Status: StatusDismissed}
	r.MarkResolved(first)
	if r.ResolvedAt == nil || !r.ResolvedAt.Equal(first) {
		t.Fatalf("ResolvedAt = %v, want %v", r.ResolvedAt, first)
	}

	r.MarkResolved(later)
	if !r.ResolvedAt.Equal(first) {
		t.Fatalf("ResolvedAt overwritten to %v", r.ResolvedAt)
	}
}

func TestMarkResolved_NonResolvingStatus(t *testing.T) {
	r := SpamReport{Status: StatusUnderReview}
	r.MarkResolved(time.Now())
	if r.ResolvedAt != nil {
		t.Fatalf("under_review stamped ResolvedAt: %v", r.ResolvedAt)
	}
}

func TestIsUrgent(t *testing.T) {
	cases := []struct {
		name     string
		priority int
		severity Severity
		status   ReportStatus
		want     bool
	}{
		{"high priority pending", 8, SeverityHigh, StatusPending, true},
		{"critical pending", 3, SeverityCritical, StatusPending, true},
		{"high priority reviewed", 9, SeverityHigh, StatusUnderReview, false},
		{"ordinary pending", 5, SeverityMedium, StatusPending, false},
	}
	for _, tc := range cases {
		r := SpamReport{Priority: tc.priority, Severity: tc.severity, Status: tc.status}
		if got := r.IsUrgent(); got != tc.want {
			t.Fatalf("%s: IsUrgent = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsStale(t *testing.T) {
	now := time.Now()
	fresh := SpamReport{Status: StatusPending, ReportedAt: now.Add(-24 * time.Hour)}
	if fresh.IsStale(now) {
		t.Fatal("day-old pending report marked stale")
	}
	old := SpamReport{Status: StatusPending, ReportedAt: now.Add(-8 * 24 * time.Hour)}
	if !old.IsStale(now) {
		t.Fatal("week-old pending report not marked stale")
	}
	reviewed := SpamReport{Status: StatusConfirmed, ReportedAt: now.Add(-30 * 24 * time.Hour)}
	if reviewed.IsStale(now) {
		t.Fatal("reviewed report marked stale")
	}
}

func TestAppealState_NeverNil(t *testing.T) {
	r := SpamReport{}
	a := r.AppealState()
	if a == nil {
		t.Fatal("AppealState returned nil")
	}
	if a.Submitted {
		t.Fatal("fresh report has a submitted appeal")
	}

	now := time.Now()
	r.Appeal = datatypes.NewJSONType(&Appeal{Submitted: true, SubmittedAt: &now, Status: AppealPending})
	a = r.AppealState()
	if !a.Submitted || a.Status != AppealPending {
		t.Fatalf("AppealState lost data: %+v", a)
	}
}

func TestSeverityForRisk(t *testing.T) {
	cases := []struct {
		level spam.RiskLevel
		want  Severity
	}{
		{spam.RiskHigh, SeverityHigh},
		{spam.RiskMedium, SeverityMedium},
		{spam.RiskLow, SeverityLow},
		{spam.RiskMinimal, SeverityLow},
	}
	for _, tc := range cases {
		if got := SeverityForRisk(tc.level); got != tc.want {
			t.Fatalf("SeverityForRisk(%s) = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestContentTypeValid(t *testing.T) {
	for _, valid := range []ContentType{ContentProperty, ContentBooking, ContentMessage, ContentUser, ContentReview} {
		if !valid.Valid() {
			t.Fatalf("%s should be valid", valid)
		}
	}
	if ContentType("listing").Valid() {
		t.Fatal("unknown content type accepted")
	}
}
