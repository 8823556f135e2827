package contract

import (
	"context"

	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/repository/specification"
)

// SharedAccessRepository is append-only; entries are never updated or removed.
type SharedAccessRepository interface {
	Create(ctx context.Context, access *entity.SharedAccess) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SharedAccess, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
