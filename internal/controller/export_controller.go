package controller

import (
	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	Export(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	ExportInfo(ctx *fiber.Ctx) error
}

type exportController struct {
	service service.IExportService
}

func NewExportController(service service.IExportService) IExportController {
	return &exportController{service: service}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("/export", c.Export)
	h.Post("/import", c.Import)
	h.Get("/export-info", c.ExportInfo)
}

type exportRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

func (c *exportController) Export(ctx *fiber.Ctx) error {
	var req exportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.Export(ctx.Context(), req.SessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *exportController) Import(ctx *fiber.Ctx) error {
	var document dto.ExportDocument
	if err := ctx.BodyParser(&document); err != nil {
		return serverutils.NewValidationError("Invalid session data")
	}
	res, err := c.service.Import(ctx.Context(), &document)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *exportController) ExportInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.ExportInfo())
}
