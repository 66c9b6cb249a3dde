package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/internal/service"
	"github.com/unboundhq/unbound-backend/pkg/captcha"
	"github.com/unboundhq/unbound-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	ok, err := captcha.VerifyTurnstile(req.CaptchaToken)
	if err != nil || !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Captcha verification failed"))
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "User registered successfully"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}
