package entity

import (
	"time"

	"github.com/google/uuid"
)

type SharedSession struct {
	Id                uuid.UUID
	OriginalSessionId uuid.UUID
	ShareToken        string
	Title             string
	IsActive          bool
	AllowEditing      bool
	ExpiresAt         *time.Time
	AccessCount       int
	LastSynced        time.Time
	PdfUrl            string
	PdfGeneratedAt    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Expired reports whether the share has passed its expiry instant.
// Expiry is evaluated lazily at access time; there is no background sweep.
func (s *SharedSession) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

type SharedAccess struct {
	Id              uuid.UUID
	SharedSessionId uuid.UUID
	IpAddress       string
	UserAgent       string
	SessionData     map[string]interface{}
	AccessedAt      time.Time
}
