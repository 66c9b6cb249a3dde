package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/internal/service"
	"github.com/unboundhq/unbound-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	events, err := h.eventService.ListEvents(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(currentUserID(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.UpdateEvent(currentUserID(c), eventID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.eventService.DeleteEvent(currentUserID(c), eventID); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted successfully"))
}

func (h *EventHandler) UploadPoster(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	fileHeader, err := c.FormFile("poster")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Poster file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read poster file"))
	}
	defer file.Close()

	event, err := h.eventService.UploadPoster(
		currentUserID(c),
		eventID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Poster uploaded successfully"))
}

func (h *EventHandler) ApprovePoster(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.eventService.ApprovePoster(currentUserID(c), eventID); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Poster approved successfully"))
}

func (h *EventHandler) RejectPoster(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.eventService.RejectPoster(currentUserID(c), eventID); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Poster rejected"))
}

func (h *EventHandler) DeletePoster(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.eventService.DeletePoster(currentUserID(c), eventID); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Poster deleted successfully"))
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
