package controller

import (
	"moody-be/internal/dto"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetHistory(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/history", c.GetHistory)
	h.Post("/send", c.Send)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	res, err := c.service.GetHistory(ctx.Context(), supabaseId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgumentError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), supabaseId, req.Message)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message sent", res))
}
