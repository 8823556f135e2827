package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message     string   `json:"message" validate:"required"`
	SessionId   string   `json:"session_id"`
	Stream      bool     `json:"stream"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	SessionId string    `json:"session_id"`
	MessageId uuid.UUID `json:"message_id"`
}

// StreamEvent is one server-push unit of a streaming chat reply. A terminal
// Err replaces any further content.
type StreamEvent struct {
	Content string
	Err     error
}

type MessageResponse struct {
	Id        uuid.UUID              `json:"id"`
	Role      string                 `json:"role"`
	Content   string                 `json:"content"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type SessionResponse struct {
	Id        uuid.UUID         `json:"id"`
	SessionId string            `json:"session_id"`
	Title     string            `json:"title"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Messages  []MessageResponse `json:"messages"`
}
