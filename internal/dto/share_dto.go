package dto

import "time"

type CreateShareRequest struct {
	SessionId    string `json:"session_id" validate:"required"`
	Title        string `json:"title"`
	AllowEditing bool   `json:"allow_editing"`
	ExpiresHours *int   `json:"expires_hours"`
}

type CreateShareResponse struct {
	Success    bool       `json:"success"`
	ShareToken string     `json:"share_token"`
	ShareUrl   string     `json:"share_url"`
	PdfUrl     string     `json:"pdf_url"`
	ExpiresAt  *time.Time `json:"expires_at"`
	Message    string     `json:"message"`
}

type SharedSessionResponse struct {
	SessionId   string            `json:"session_id"`
	Title       string            `json:"title"`
	Messages    []MessageResponse `json:"messages"`
	IsEditable  bool              `json:"is_editable"`
	LastSynced  time.Time         `json:"last_synced"`
	AccessCount int               `json:"access_count"`
	PdfUrl      string            `json:"pdf_url"`
	ExpiresAt   *time.Time        `json:"expires_at"`
}

type AddSharedMessageRequest struct {
	Content string `json:"content" validate:"required"`
	Role    string `json:"role"`
}

type AddSharedMessageResponse struct {
	Success   bool      `json:"success"`
	MessageId string    `json:"message_id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type SharedSessionInfoResponse struct {
	Title        string     `json:"title"`
	IsActive     bool       `json:"is_active"`
	AllowEditing bool       `json:"allow_editing"`
	AccessCount  int        `json:"access_count"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSynced   time.Time  `json:"last_synced"`
	ExpiresAt    *time.Time `json:"expires_at"`
	PdfUrl       string     `json:"pdf_url"`
}
