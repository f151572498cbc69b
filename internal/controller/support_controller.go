package controller

import (
	"hr-support-be/internal/dto"
	"hr-support-be/internal/pkg/serverutils"
	"hr-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISupportController interface {
	RegisterRoutes(r fiber.Router)
	SubmitQuery(ctx *fiber.Ctx) error
	ShowConversation(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
}

type supportController struct {
	service service.ISupportService
}

func NewSupportController(service service.ISupportService) ISupportController {
	return &supportController{service: service}
}

func (c *supportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/support/v1")
	h.Post("/query", c.SubmitQuery)
	h.Get("/conversations", c.ListConversations)
	h.Get("/conversations/:id", c.ShowConversation)
}

func (c *supportController) SubmitQuery(ctx *fiber.Ctx) error {
	var req dto.SubmitQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitQuery(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Query processed", res))
}

func (c *supportController) ShowConversation(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid conversation id")
	}

	res, err := c.service.ShowConversation(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}

func (c *supportController) ListConversations(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id") // empty lists across all users
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, total, err := c.service.ListConversations(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.PagedSuccessResponse("Success list conversations", res, total, limit, offset))
}
