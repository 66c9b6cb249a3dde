package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/internal/service"
	"github.com/unboundhq/unbound-backend/pkg/utils"
)

type FestHandler struct {
	festService *service.FestService
	validator   *utils.Validator
}

func NewFestHandler(festService *service.FestService, validator *utils.Validator) *FestHandler {
	return &FestHandler{
		festService: festService,
		validator:   validator,
	}
}

func (h *FestHandler) GetFests(c *fiber.Ctx) error {
	fests, err := h.festService.ListFests(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(fests, "Fests retrieved successfully"))
}

func (h *FestHandler) CreateFest(c *fiber.Ctx) error {
	var req models.FestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	fest, err := h.festService.CreateFest(currentUserID(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(fest, "Fest created successfully"))
}

func (h *FestHandler) UpdateFest(c *fiber.Ctx) error {
	festID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid fest ID"))
	}

	var req models.FestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	fest, err := h.festService.UpdateFest(currentUserID(c), uint(festID), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(fest, "Fest updated successfully"))
}

func (h *FestHandler) DeleteFest(c *fiber.Ctx) error {
	festID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid fest ID"))
	}

	if err := h.festService.DeleteFest(currentUserID(c), uint(festID)); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Fest deleted successfully"))
}
