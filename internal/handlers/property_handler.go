package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentora/rentora-backend/internal/dto"
	"github.com/rentora/rentora-backend/internal/middleware"
	"github.com/rentora/rentora-backend/internal/services"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
	authService     *services.AuthService
}

func NewPropertyHandler(propertyService *services.PropertyService, authService *services.AuthService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, authService: authService}
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}
	owner, err := h.authService.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}

	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	prop, err := h.propertyService.Create(c.UserContext(), owner, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Listing created", prop))
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid property ID"))
	}

	prop, err := h.propertyService.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", prop))
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	var q dto.ListPropertiesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid query parameters"))
	}

	props, total, err := h.propertyService.List(c.UserContext(), &q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{
		"properties": props,
		"total":      total,
	}))
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid property ID"))
	}
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}
	actor, err := h.authService.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}

	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	prop, err := h.propertyService.Update(c.UserContext(), actor, id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Listing updated", prop))
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid property ID"))
	}
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}
	actor, err := h.authService.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}

	if err := h.propertyService.Delete(c.UserContext(), actor, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Listing deleted", nil))
}
