package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByShareToken filters shared sessions by their public token.
type ByShareToken struct {
	ShareToken string
}

func (s ByShareToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("share_token = ?", s.ShareToken)
}

// BySharedSessionID filters access log entries by shared session.
type BySharedSessionID struct {
	SharedSessionID uuid.UUID
}

func (s BySharedSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("shared_session_id = ?", s.SharedSessionID)
}
