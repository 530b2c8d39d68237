package controller

import (
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAudioController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetByCategory(ctx *fiber.Ctx) error
}

type audioController struct {
	service service.IAudioService
}

func NewAudioController(service service.IAudioService) IAudioController {
	return &audioController{service: service}
}

func (c *audioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/audio")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("/:category", c.GetByCategory)
}

func (c *audioController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Audio tracks", res))
}

func (c *audioController) GetByCategory(ctx *fiber.Ctx) error {
	res, err := c.service.GetByCategory(ctx.Context(), ctx.Params("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Audio tracks", res))
}
