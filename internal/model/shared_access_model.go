package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SharedAccess rows are append-only; nothing in the system mutates or deletes them.
type SharedAccess struct {
	Id              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	SharedSessionId uuid.UUID         `gorm:"type:uuid;not null;index"`
	IpAddress       string            `gorm:"type:varchar(45)"`
	UserAgent       string            `gorm:"type:text"`
	SessionData     datatypes.JSONMap `gorm:"type:jsonb"`
	AccessedAt      time.Time         `gorm:"autoCreateTime;index"`
}

func (SharedAccess) TableName() string {
	return "shared_accesses"
}
