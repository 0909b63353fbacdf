package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/dto"
	"github.com/rentora/rentora-backend/internal/middleware"
	"github.com/rentora/rentora-backend/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	notifications, err := h.notificationService.ListForUser(c.UserContext(), userID, limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"notifications": notifications}))
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid notification ID"))
	}
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	if err := h.notificationService.MarkRead(c.UserContext(), userID, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Notification marked as read", nil))
}
