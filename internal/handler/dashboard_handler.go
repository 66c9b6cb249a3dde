package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/internal/service"
	"github.com/unboundhq/unbound-backend/pkg/utils"
)

type DashboardHandler struct {
	dashboardService   *service.DashboardService
	certificateService *service.CertificateService
	validator          *utils.Validator
}

func NewDashboardHandler(
	dashboardService *service.DashboardService,
	certificateService *service.CertificateService,
	validator *utils.Validator,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:   dashboardService,
		certificateService: certificateService,
		validator:          validator,
	}
}

func (h *DashboardHandler) Earnings(c *fiber.Ctx) error {
	report, err := h.dashboardService.Earnings(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(report, "Earnings retrieved successfully"))
}

func (h *DashboardHandler) Registrations(c *fiber.Ctx) error {
	stats, err := h.dashboardService.RegistrationStats(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(stats, "Registration stats retrieved successfully"))
}

func (h *DashboardHandler) AnalyticsByFest(c *fiber.Ctx) error {
	stats, err := h.dashboardService.StatsByFest(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(stats, "Fest analytics retrieved successfully"))
}

func (h *DashboardHandler) AnalyticsByDate(c *fiber.Ctx) error {
	stats, err := h.dashboardService.StatsByDate(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(stats, "Date analytics retrieved successfully"))
}

func (h *DashboardHandler) StudentStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.StudentStats(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(stats, "Student stats retrieved successfully"))
}

// ApproveAllCertificates flips certificate approval for every
// registration of the event.
func (h *DashboardHandler) ApproveAllCertificates(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	count, err := h.certificateService.ApproveAll(currentUserID(c), eventID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"approved": count}, "Certificates approved"))
}

// ApproveCertificates approves the listed registrations only. IDs that
// do not belong to the event are skipped.
func (h *DashboardHandler) ApproveCertificates(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.ApproveCertificatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	count, err := h.certificateService.ApproveList(currentUserID(c), eventID, req.RegistrationIDs)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"approved": count}, "Certificates approved"))
}
