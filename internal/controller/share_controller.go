package controller

import (
	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IShareController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Resolve(ctx *fiber.Ctx) error
	AddMessage(ctx *fiber.Ctx) error
	FetchPdf(ctx *fiber.Ctx) error
	Info(ctx *fiber.Ctx) error
}

type shareController struct {
	service service.IShareService
}

func NewShareController(service service.IShareService) IShareController {
	return &shareController{service: service}
}

func (c *shareController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/shared")
	h.Post("/create", c.Create)
	h.Get("/:shareToken", c.Resolve)
	h.Post("/:shareToken/add-message", c.AddMessage)
	h.Get("/:shareToken/pdf", c.FetchPdf)
	h.Get("/:shareToken/info", c.Info)
}

func (c *shareController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateShareRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *shareController) Resolve(ctx *fiber.Ctx) error {
	res, err := c.service.Resolve(ctx.Context(), ctx.Params("shareToken"), ctx.IP(), ctx.Get(fiber.HeaderUserAgent))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *shareController) AddMessage(ctx *fiber.Ctx) error {
	var req dto.AddSharedMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.AddMessage(ctx.Context(), ctx.Params("shareToken"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *shareController) FetchPdf(ctx *fiber.Ctx) error {
	document, fileName, err := c.service.FetchPdf(ctx.Context(), ctx.Params("shareToken"))
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(document)
}

func (c *shareController) Info(ctx *fiber.Ctx) error {
	res, err := c.service.Info(ctx.Context(), ctx.Params("shareToken"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
