package mapper

import (
	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/model"

	"gorm.io/datatypes"
)

type ShareMapper struct{}

func NewShareMapper() *ShareMapper {
	return &ShareMapper{}
}

func (m *ShareMapper) SharedSessionToEntity(s *model.SharedSession) *entity.SharedSession {
	if s == nil {
		return nil
	}

	return &entity.SharedSession{
		Id:                s.Id,
		OriginalSessionId: s.OriginalSessionId,
		ShareToken:        s.ShareToken,
		Title:             s.Title,
		IsActive:          s.IsActive,
		AllowEditing:      s.AllowEditing,
		ExpiresAt:         s.ExpiresAt,
		AccessCount:       s.AccessCount,
		LastSynced:        s.LastSynced,
		PdfUrl:            s.PdfUrl,
		PdfGeneratedAt:    s.PdfGeneratedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *ShareMapper) SharedSessionToModel(s *entity.SharedSession) *model.SharedSession {
	if s == nil {
		return nil
	}

	return &model.SharedSession{
		Id:                s.Id,
		OriginalSessionId: s.OriginalSessionId,
		ShareToken:        s.ShareToken,
		Title:             s.Title,
		IsActive:          s.IsActive,
		AllowEditing:      s.AllowEditing,
		ExpiresAt:         s.ExpiresAt,
		AccessCount:       s.AccessCount,
		LastSynced:        s.LastSynced,
		PdfUrl:            s.PdfUrl,
		PdfGeneratedAt:    s.PdfGeneratedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *ShareMapper) SharedAccessToEntity(a *model.SharedAccess) *entity.SharedAccess {
	if a == nil {
		return nil
	}

	return &entity.SharedAccess{
		Id:              a.Id,
		SharedSessionId: a.SharedSessionId,
		IpAddress:       a.IpAddress,
		UserAgent:       a.UserAgent,
		SessionData:     a.SessionData,
		AccessedAt:      a.AccessedAt,
	}
}

func (m *ShareMapper) SharedAccessToModel(a *entity.SharedAccess) *model.SharedAccess {
	if a == nil {
		return nil
	}

	return &model.SharedAccess{
		Id:              a.Id,
		SharedSessionId: a.SharedSessionId,
		IpAddress:       a.IpAddress,
		UserAgent:       a.UserAgent,
		SessionData:     datatypes.JSONMap(a.SessionData),
		AccessedAt:      a.AccessedAt,
	}
}
