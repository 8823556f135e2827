package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-chatbox-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	streamEvents []dto.StreamEvent
}

func (s *stubChatService) Send(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	return &dto.ChatResponse{Response: "ok", SessionId: request.SessionId}, nil
}

func (s *stubChatService) SendStream(ctx context.Context, request *dto.ChatRequest) (<-chan dto.StreamEvent, error) {
	events := make(chan dto.StreamEvent, len(s.streamEvents))
	for _, event := range s.streamEvents {
		events <- event
	}
	close(events)
	return events, nil
}

func (s *stubChatService) GetSession(ctx context.Context, sessionToken string) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{SessionId: sessionToken}, nil
}

func (s *stubChatService) GetAllSessions(ctx context.Context) ([]*dto.SessionResponse, error) {
	return nil, nil
}

func (s *stubChatService) DeleteSession(ctx context.Context, sessionToken string) error {
	return nil
}

func newChatTestApp(svc *stubChatService) *fiber.App {
	app := fiber.New()
	NewChatController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestChatStreamWireFormat(t *testing.T) {
	svc := &stubChatService{streamEvents: []dto.StreamEvent{
		{Content: "Hel"},
		{Content: "lo"},
	}}
	app := newChatTestApp(svc)

	req := httptest.NewRequest("POST", "/api/chat",
		strings.NewReader(`{"message":"hi","session_id":"tok","stream":true}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "data: {\"content\":\"Hel\"}\n\ndata: {\"content\":\"lo\"}\n\n", string(body))
}
