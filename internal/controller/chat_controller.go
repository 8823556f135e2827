package controller

import (
	"bufio"
	"encoding/json"
	"fmt"

	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("", c.Chat)
	h.Get("/sessions", c.GetSessions)
	h.Get("/session/:sessionId", c.GetSession)
	h.Delete("/session/:sessionId", c.DeleteSession)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if !req.Stream {
		res, err := c.service.Send(ctx.Context(), &req)
		if err != nil {
			return err
		}
		return ctx.JSON(res)
	}

	// Session lookup and upstream dial happen before the response is
	// committed, so 404s and validation errors still render as JSON.
	events, err := c.service.SendStream(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")
	ctx.Set("X-Accel-Buffering", "no")

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// A dead client must not stall the producer; whatever is left on
		// the channel gets drained before the writer returns.
		defer func() {
			for range events {
			}
		}()

		for event := range events {
			var frame []byte
			if event.Err != nil {
				frame, _ = json.Marshal(fiber.Map{"error": event.Err.Error()})
			} else {
				frame, _ = json.Marshal(fiber.Map{"content": event.Content})
			}
			if _, writeErr := fmt.Fprintf(w, "data: %s\n\n", frame); writeErr != nil {
				return
			}
			if flushErr := w.Flush(); flushErr != nil {
				return
			}
			if event.Err != nil {
				return
			}
		}
	}))

	return nil
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.service.GetSession(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllSessions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.service.DeleteSession(ctx.Context(), ctx.Params("sessionId")); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Session deleted successfully"})
}
