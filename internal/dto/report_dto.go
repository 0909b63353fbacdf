package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	ContentType string   `json:"content_type"`
	ContentID   string   `json:"content_id"`
	Category    string   `json:"category"`
	Reason      string   `json:"reason"`
	Description string   `json:"description,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
}

type ListReportsQuery struct {
	Status      string `query:"status"`
	Severity    string `query:"severity"`
	ContentType string `query:"content_type"`
	ReportType  string `query:"report_type"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
	SortBy      string `query:"sort_by"`
	SortDir     string `query:"sort_dir"`
}

type ReviewReportRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
	Action string `json:"action,omitempty"`
}

type BulkReviewRequest struct {
	ReportIDs []uuid.UUID `json:"report_ids"`
	Status    string      `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	Action    string      `json:"action,omitempty"`
}

type BulkReviewResponse struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type SubmitAppealRequest struct {
	Reason string `json:"reason"`
}

type ReviewAppealRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type CheckContentRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
}

type ReportedUserStat struct {
	UserID uuid.UUID `json:"user_id"`
	Count  int64     `json:"count"`
}

type StatisticsResponse struct {
	Period            string              `json:"period"`
	TotalReports      int64               `json:"total_reports"`
	ByStatus          map[string]int64    `json:"by_status"`
	BySeverity        map[string]int64    `json:"by_severity"`
	ByReportType      map[string]int64    `json:"by_report_type"`
	AverageConfidence float64             `json:"average_confidence"`
	TopReportedUsers  []ReportedUserStat  `json:"top_reported_users"`
}
