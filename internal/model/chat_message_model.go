package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID         `gorm:"type:uuid;not null;index"`
	Role          string            `gorm:"type:varchar(10);not null"`
	Content       string            `gorm:"type:text;not null"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
