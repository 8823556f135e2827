package contract

import (
	"context"

	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SharedSessionRepository interface {
	Create(ctx context.Context, share *entity.SharedSession) error
	Update(ctx context.Context, share *entity.SharedSession) error
	DeleteByOriginalSessionId(ctx context.Context, sessionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SharedSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SharedSession, error)
}
