package entity

import (
	"time"

	"github.com/google/uuid"
)

type ParsedFile struct {
	Id            uuid.UUID
	OriginalName  string
	FileType      string
	FileSize      int64
	ParsedContent string
	Metadata      map[string]interface{}
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
