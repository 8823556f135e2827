package contract

import (
	"context"

	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ParsedFileRepository interface {
	Create(ctx context.Context, file *entity.ParsedFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ParsedFile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ParsedFile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
