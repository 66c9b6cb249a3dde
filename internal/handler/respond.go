package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
)

// fail translates a service error into the wire response. Unknown error
// values fall through as internal server errors.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.Validation:
		status = fiber.StatusBadRequest
	case apperr.Conflict, apperr.CapacityExceeded:
		status = fiber.StatusConflict
	case apperr.NotFoundOrForbidden:
		status = fiber.StatusNotFound
	case apperr.Forbidden:
		status = fiber.StatusForbidden
	case apperr.Gateway:
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(models.ErrorResponse(err.Error()))
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}
