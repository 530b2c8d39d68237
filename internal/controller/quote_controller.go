package controller

import (
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuoteController interface {
	RegisterRoutes(r fiber.Router)
	GetToday(ctx *fiber.Ctx) error
}

type quoteController struct {
	service service.IQuoteService
}

func NewQuoteController(service service.IQuoteService) IQuoteController {
	return &quoteController{service: service}
}

func (c *quoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quote")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/today", c.GetToday)
}

func (c *quoteController) GetToday(ctx *fiber.Ctx) error {
	res, err := c.service.GetToday(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Daily quote", res))
}
