package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/internal/service"
	"github.com/unboundhq/unbound-backend/pkg/utils"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	validator      *utils.Validator
}

func NewPaymentHandler(paymentService *service.PaymentService, validator *utils.Validator) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	order, err := h.paymentService.CreateOrder(req.RegistrationID, req.Amount, req.Currency, req.ReceiptEmail)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(order, "Order created successfully"))
}

func (h *PaymentHandler) CreateOrderForEvent(c *fiber.Ctx) error {
	var req models.CreateOrderForEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	order, err := h.paymentService.CreateOrderForEvent(req.EventID, req.Amount, req.Currency, req.ReceiptEmail)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(order, "Order created successfully"))
}

// Verify receives the gateway status callback. Unknown orders are
// acknowledged without effect.
func (h *PaymentHandler) Verify(c *fiber.Ctx) error {
	var req models.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.paymentService.Reconcile(req.RazorpayOrderID, req.Status, req.PaymentID); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Payment status recorded"))
}
