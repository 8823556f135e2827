package controller

import (
	"io"

	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	LLMContext(ctx *fiber.Ctx) error
}

type fileController struct {
	service service.IFileService
}

func NewFileController(service service.IFileService) IFileController {
	return &fileController{service: service}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/file")
	h.Post("/upload", c.Upload)
	h.Get("", c.GetAll)
	h.Post("/search", c.Search)
	h.Get("/llm-context", c.LLMContext)
	h.Get("/:fileId", c.Get)
	h.Delete("/:fileId", c.Delete)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewValidationError("No file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serverutils.NewInternalError("Failed to read uploaded file: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return serverutils.NewInternalError("Failed to read uploaded file: %v", err)
	}

	res, err := c.service.Upload(ctx.Context(), fileHeader.Filename, data, ctx.FormValue("description"))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *fileController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *fileController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("fileId"))
	if err != nil {
		return serverutils.NewNotFoundError("File not found")
	}
	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("fileId"))
	if err != nil {
		return serverutils.NewNotFoundError("File not found")
	}
	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "File deleted successfully"})
}

func (c *fileController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchFilesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.Search(ctx.Context(), req.Query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *fileController) LLMContext(ctx *fiber.Ctx) error {
	res, err := c.service.LLMContext(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
