package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionToken filters chat sessions by their public session_id token.
type BySessionToken struct {
	SessionToken string
}

func (s BySessionToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionToken)
}

// ByChatSessionID filters messages by owning session.
type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}
