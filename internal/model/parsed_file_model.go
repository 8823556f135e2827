package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ParsedFile struct {
	Id            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OriginalName  string            `gorm:"type:varchar(255);not null"`
	FileType      string            `gorm:"type:varchar(50);not null"`
	FileSize      int64             `gorm:"not null"`
	ParsedContent string            `gorm:"type:text"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime"`
}

func (ParsedFile) TableName() string {
	return "parsed_files"
}
