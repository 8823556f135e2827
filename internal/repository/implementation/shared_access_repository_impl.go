package implementation

import (
	"context"

	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/mapper"
	"ai-chatbox-be/internal/model"
	"ai-chatbox-be/internal/repository/contract"
	"ai-chatbox-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SharedAccessRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShareMapper
}

func NewSharedAccessRepository(db *gorm.DB) contract.SharedAccessRepository {
	return &SharedAccessRepositoryImpl{
		db:     db,
		mapper: mapper.NewShareMapper(),
	}
}

func (r *SharedAccessRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SharedAccessRepositoryImpl) Create(ctx context.Context, access *entity.SharedAccess) error {
	m := r.mapper.SharedAccessToModel(access)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*access = *r.mapper.SharedAccessToEntity(m)
	return nil
}

func (r *SharedAccessRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SharedAccess, error) {
	var models []*model.SharedAccess
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SharedAccess, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SharedAccessToEntity(m)
	}
	return entities, nil
}

func (r *SharedAccessRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SharedAccess{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
