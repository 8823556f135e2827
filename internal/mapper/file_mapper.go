package mapper

import (
	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/model"

	"gorm.io/datatypes"
)

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ParsedFileToEntity(f *model.ParsedFile) *entity.ParsedFile {
	if f == nil {
		return nil
	}

	return &entity.ParsedFile{
		Id:            f.Id,
		OriginalName:  f.OriginalName,
		FileType:      f.FileType,
		FileSize:      f.FileSize,
		ParsedContent: f.ParsedContent,
		Metadata:      f.Metadata,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func (m *FileMapper) ParsedFileToModel(f *entity.ParsedFile) *model.ParsedFile {
	if f == nil {
		return nil
	}

	return &model.ParsedFile{
		Id:            f.Id,
		OriginalName:  f.OriginalName,
		FileType:      f.FileType,
		FileSize:      f.FileSize,
		ParsedContent: f.ParsedContent,
		Metadata:      datatypes.JSONMap(f.Metadata),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
