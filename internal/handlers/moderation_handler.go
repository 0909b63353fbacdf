package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/dto"
	"github.com/rentora/rentora-backend/internal/middleware"
	"github.com/rentora/rentora-backend/internal/models"
	"github.com/rentora/rentora-backend/internal/services"
)

type ModerationHandler struct {
	reportService    *services.ReportService
	detectionService *services.DetectionService
}

func NewModerationHandler(reportService *services.ReportService, detectionService *services.DetectionService) *ModerationHandler {
	return &ModerationHandler{reportService: reportService, detectionService: detectionService}
}

// CreateReport lets an authenticated user report content.
func (h *ModerationHandler) CreateReport(c *fiber.Ctx) error {
	reporterID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	report, err := h.reportService.SubmitReport(c.UserContext(), reporterID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Report submitted", report))
}

// ListReports is the admin report queue with filters and pagination.
func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	var q dto.ListReportsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid query parameters"))
	}

	reports, total, err := h.reportService.ListReports(c.UserContext(), &q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{
		"reports": reports,
		"total":   total,
	}))
}

// UrgentReports returns the top pending reports needing attention.
func (h *ModerationHandler) UrgentReports(c *fiber.Ctx) error {
	reports, err := h.reportService.UrgentReports(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"reports": reports}))
}

// ReportsAgainstUser returns open reports against one user.
func (h *ModerationHandler) ReportsAgainstUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid user ID"))
	}

	reports, err := h.reportService.ReportsAgainstUser(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"reports": reports}))
}

// ReviewReport applies an admin decision to one report.
func (h *ModerationHandler) ReviewReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid report ID"))
	}
	reviewerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.ReviewReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	report, err := h.reportService.ReviewReport(c.UserContext(), reportID, reviewerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Report reviewed", report))
}

// BulkReview applies the same decision to up to 50 reports.
func (h *ModerationHandler) BulkReview(c *fiber.Ctx) error {
	reviewerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.BulkReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := h.reportService.BulkReview(c.UserContext(), reviewerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Bulk review completed", result))
}

// SubmitAppeal lets the reported user contest a confirmed report once.
func (h *ModerationHandler) SubmitAppeal(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid report ID"))
	}
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.SubmitAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	report, err := h.reportService.SubmitAppeal(c.UserContext(), reportID, userID, req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Appeal submitted", report))
}

// ReviewAppeal resolves a pending appeal.
func (h *ModerationHandler) ReviewAppeal(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid report ID"))
	}
	reviewerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.ReviewAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	report, err := h.reportService.ReviewAppeal(c.UserContext(), reportID, reviewerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Appeal reviewed", report))
}

// Statistics aggregates moderation activity over a period.
func (h *ModerationHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.reportService.Statistics(c.UserContext(), c.Query("period"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", stats))
}

// CheckContent is the admin manual detection trigger.
func (h *ModerationHandler) CheckContent(c *fiber.Ctx) error {
	var req dto.CheckContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := h.detectionService.CheckContent(c.UserContext(), models.ContentType(req.ContentType), req.ContentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", result))
}
