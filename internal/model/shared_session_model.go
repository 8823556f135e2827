package model

import (
	"time"

	"github.com/google/uuid"
)

type SharedSession struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OriginalSessionId uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShareToken        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Title             string     `gorm:"type:varchar(200);not null"`
	IsActive          bool       `gorm:"not null;default:true"`
	AllowEditing      bool       `gorm:"not null;default:false"`
	ExpiresAt         *time.Time `gorm:"index"`
	AccessCount       int        `gorm:"not null;default:0"`
	LastSynced        time.Time
	PdfUrl            string     `gorm:"type:varchar(500)"`
	PdfGeneratedAt    *time.Time
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (SharedSession) TableName() string {
	return "shared_sessions"
}
