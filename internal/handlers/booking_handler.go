package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/dto"
	"github.com/rentora/rentora-backend/internal/middleware"
	"github.com/rentora/rentora-backend/internal/services"
)

type BookingHandler struct {
	bookingService *services.BookingService
	authService    *services.AuthService
}

func NewBookingHandler(bookingService *services.BookingService, authService *services.AuthService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, authService: authService}
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}
	guest, err := h.authService.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	booking, err := h.bookingService.Create(c.UserContext(), guest, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Booking requested", booking))
}

func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid booking ID"))
	}
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}
	actor, err := h.authService.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}

	booking, err := h.bookingService.Get(c.UserContext(), actor, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", booking))
}

func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	bookings, err := h.bookingService.ListForUser(c.UserContext(), userID, limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"bookings": bookings}))
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid booking ID"))
	}
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}
	actor, err := h.authService.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}

	booking, err := h.bookingService.Cancel(c.UserContext(), actor, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Booking cancelled", booking))
}
