package dto

import (
	"time"

	"github.com/google/uuid"
)

type ParsedFileResponse struct {
	Id            uuid.UUID              `json:"id"`
	OriginalName  string                 `json:"original_name"`
	FileType      string                 `json:"file_type"`
	FileSize      int64                  `json:"file_size"`
	ParsedContent string                 `json:"parsed_content"`
	Metadata      map[string]interface{} `json:"metadata"`
	CreatedAt     time.Time              `json:"created_at"`
}

type SearchFilesRequest struct {
	Query string `json:"query" validate:"required"`
}

type LLMContextFile struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Summary        string    `json:"summary"`
	Insights       []string  `json:"insights"`
	ContentPreview string    `json:"content_preview"`
}

type LLMContextResponse struct {
	Files      []LLMContextFile `json:"files"`
	TotalFiles int              `json:"total_files"`
}
