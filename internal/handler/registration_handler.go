package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/internal/service"
	"github.com/unboundhq/unbound-backend/pkg/utils"
)

type RegistrationHandler struct {
	registrationService *service.RegistrationService
	certificateService  *service.CertificateService
	validator           *utils.Validator
}

func NewRegistrationHandler(
	registrationService *service.RegistrationService,
	certificateService *service.CertificateService,
	validator *utils.Validator,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		certificateService:  certificateService,
		validator:           validator,
	}
}

func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	var req models.EventRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	userID := currentUserID(c)

	var (
		reg *models.EventRegistration
		err error
	)
	switch req.RegistrationType {
	case models.RegistrationTypeSolo:
		reg, err = h.registrationService.RegisterSolo(userID, req.EventID)
	case models.RegistrationTypeTeam:
		reg, err = h.registrationService.RegisterTeam(userID, req.EventID, service.TeamRef{
			TeamID:    req.TeamID,
			TeamName:  req.TeamName,
			MemberIDs: req.MemberIDs,
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid registration type"))
	}
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(reg, "Registered successfully"))
}

func (h *RegistrationHandler) MyRegistrations(c *fiber.Ctx) error {
	regs, err := h.registrationService.MyRegistrations(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(regs, "Registrations retrieved successfully"))
}

// Ticket streams the registration QR code as a PNG.
func (h *RegistrationHandler) Ticket(c *fiber.Ctx) error {
	registrationID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid registration ID"))
	}

	size := c.QueryInt("size", 256)
	png, err := h.registrationService.TicketPNG(currentUserID(c), registrationID, size)
	if err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// Certificate streams the participation certificate as a PDF.
func (h *RegistrationHandler) Certificate(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	pdf, err := h.certificateService.Download(currentUserID(c), eventID)
	if err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="certificate-%d.pdf"`, eventID))
	return c.Send(pdf)
}
