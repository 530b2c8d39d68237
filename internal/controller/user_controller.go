package controller

import (
	"moody-be/internal/dto"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	DeleteAccount(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/me", c.GetProfile)
	h.Patch("/me", c.UpdateProfile)
	h.Delete("/me", c.DeleteAccount)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)
	email, _ := ctx.Locals("email").(string)

	res, err := c.service.GetProfile(ctx.Context(), supabaseId, email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgumentError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.Context(), supabaseId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *userController) DeleteAccount(ctx *fiber.Ctx) error {
	supabaseId := ctx.Locals("supabase_id").(string)

	if err := c.service.DeleteAccount(ctx.Context(), supabaseId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account deleted", nil))
}
