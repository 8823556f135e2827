package implementation

import (
	"context"
	"errors"

	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/mapper"
	"ai-chatbox-be/internal/model"
	"ai-chatbox-be/internal/repository/contract"
	"ai-chatbox-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SharedSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShareMapper
}

func NewSharedSessionRepository(db *gorm.DB) contract.SharedSessionRepository {
	return &SharedSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewShareMapper(),
	}
}

func (r *SharedSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SharedSessionRepositoryImpl) Create(ctx context.Context, share *entity.SharedSession) error {
	m := r.mapper.SharedSessionToModel(share)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*share = *r.mapper.SharedSessionToEntity(m)
	return nil
}

func (r *SharedSessionRepositoryImpl) Update(ctx context.Context, share *entity.SharedSession) error {
	m := r.mapper.SharedSessionToModel(share)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*share = *r.mapper.SharedSessionToEntity(m)
	return nil
}

func (r *SharedSessionRepositoryImpl) DeleteByOriginalSessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("original_session_id = ?", sessionId).Delete(&model.SharedSession{}).Error
}

func (r *SharedSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SharedSession, error) {
	var m model.SharedSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SharedSessionToEntity(&m), nil
}

func (r *SharedSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SharedSession, error) {
	var models []*model.SharedSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SharedSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SharedSessionToEntity(m)
	}
	return entities, nil
}
