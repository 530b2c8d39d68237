package controller

import (
	"moody-be/internal/dto"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IJournalController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type journalController struct {
	service service.IJournalService
}

func NewJournalController(service service.IJournalService) IJournalController {
	return &journalController{service: service}
}

func (c *journalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/journal")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewInvalidArgumentError("Invalid id")
	}
	return id, nil
}

func (c *journalController) Create(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	var req dto.CreateJournalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgumentError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), supabaseId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Journal entry created", res))
}

func (c *journalController) GetAll(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	res, err := c.service.GetAll(ctx.Context(), supabaseId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Journal entries", res))
}

func (c *journalController) Show(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), supabaseId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Journal entry", res))
}

func (c *journalController) Update(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateJournalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgumentError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), supabaseId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Journal entry updated", res))
}

func (c *journalController) Delete(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), supabaseId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Journal entry deleted", nil))
}
