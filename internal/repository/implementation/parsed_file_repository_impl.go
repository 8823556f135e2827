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

type ParsedFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FileMapper
}

func NewParsedFileRepository(db *gorm.DB) contract.ParsedFileRepository {
	return &ParsedFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewFileMapper(),
	}
}

func (r *ParsedFileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ParsedFileRepositoryImpl) Create(ctx context.Context, file *entity.ParsedFile) error {
	m := r.mapper.ParsedFileToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ParsedFileToEntity(m)
	return nil
}

func (r *ParsedFileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ParsedFile{}, id).Error
}

func (r *ParsedFileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ParsedFile, error) {
	var m model.ParsedFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ParsedFileToEntity(&m), nil
}

func (r *ParsedFileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ParsedFile, error) {
	var models []*model.ParsedFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ParsedFile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ParsedFileToEntity(m)
	}
	return entities, nil
}

func (r *ParsedFileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ParsedFile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
