package controller

import (
	"moody-be/internal/dto"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMoodController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetWeekly(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type moodController struct {
	service service.IMoodService
}

func NewMoodController(service service.IMoodService) IMoodController {
	return &moodController{service: service}
}

func (c *moodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mood")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("/weekly", c.GetWeekly)
	h.Get("/stats", c.GetStats)
}

func (c *moodController) Create(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	var req dto.CreateMoodRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Mood logged", res))
}

func (c *moodController) GetWeekly(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	res, err := c.service.GetWeekly(ctx.Context(), supabaseId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Weekly moods", res))
}

func (c *moodController) GetStats(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	res, err := c.service.GetStats(ctx.Context(), supabaseId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Mood stats", res))
}
