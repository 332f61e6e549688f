package controller

import (
	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/pkg/serverutils"
	"contentcraft-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type contentController struct {
	contentService service.IContentService
}

func NewContentController(contentService service.IContentService) IContentController {
	return &contentController{
		contentService: contentService,
	}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Save)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

// parseContentId turns the path parameter into an id. A value that is not
// a UUID cannot name an existing record, so it is reported as not found
// rather than as a malformed request.
func parseContentId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewNotFound("Content")
	}
	return id, nil
}

func (c *contentController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	query := dto.ListContentQuery{
		Type:   ctx.Query("type", ""),
		Limit:  ctx.QueryInt("limit", 0),
		Offset: ctx.QueryInt("offset", 0),
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	records, err := c.contentService.List(ctx.Context(), userId, &query)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ListContentResponse{
		Success: true,
		Content: records,
		Total:   len(records),
	})
}

func (c *contentController) Save(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.Save(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.SaveContentResponse{
		Success: true,
		Message: "Content saved successfully",
		Id:      res.Id,
		Content: res,
	})
}

func (c *contentController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	id, err := parseContentId(ctx)
	if err != nil {
		return err
	}

	res, err := c.contentService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ShowContentResponse{
		Success: true,
		Content: res,
	})
}

func (c *contentController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	id, err := parseContentId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.UpdateContentResponse{
		Success: true,
		Message: "Content updated successfully",
		Content: res,
	})
}

func (c *contentController) Delete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	id, err := parseContentId(ctx)
	if err != nil {
		return err
	}

	if err := c.contentService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(dto.DeleteContentResponse{
		Success: true,
		Message: "Content deleted successfully",
	})
}
