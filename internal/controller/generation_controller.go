package controller

import (
	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/pkg/serverutils"
	"contentcraft-be/internal/service"
	"contentcraft-be/pkg/prompt"

	"github.com/gofiber/fiber/v2"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	GenerateIdeas(ctx *fiber.Ctx) error
	GenerateOutline(ctx *fiber.Ctx) error
	GenerateDraft(ctx *fiber.Ctx) error
}

type generationController struct {
	generationService service.IGenerationService
}

func NewGenerationController(generationService service.IGenerationService) IGenerationController {
	return &generationController{
		generationService: generationService,
	}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/generate/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("ideas", c.GenerateIdeas)
	h.Post("outline", c.GenerateOutline)
	h.Post("draft", c.GenerateDraft)
}

func (c *generationController) GenerateIdeas(ctx *fiber.Ctx) error {
	return c.generate(ctx, prompt.ModeIdeas)
}

func (c *generationController) GenerateOutline(ctx *fiber.Ctx) error {
	return c.generate(ctx, prompt.ModeOutline)
}

func (c *generationController) GenerateDraft(ctx *fiber.Ctx) error {
	return c.generate(ctx, prompt.ModeDraft)
}

func (c *generationController) generate(ctx *fiber.Ctx, mode prompt.Mode) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.GenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.generationService.Generate(ctx.Context(), userId, mode, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
