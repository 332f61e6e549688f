package controller

import (
	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/pkg/serverutils"
	"contentcraft-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Account created successfully",
		"id":      res.Id,
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":      true,
		"access_token": res.AccessToken,
		"user":         res.User,
	})
}
