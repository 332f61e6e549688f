package implementation

import (
	"context"
	"errors"

	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/mapper"
	"contentcraft-be/internal/model"
	"contentcraft-be/internal/repository/contract"
	"contentcraft-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentRepositoryImpl) Create(ctx context.Context, content *entity.Content) error {
	m := r.mapper.ToModel(content)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*content = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) Update(ctx context.Context, content *entity.Content) error {
	m := r.mapper.ToModel(content)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*content = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Content{}).Error
}

func (r *ContentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Content, error) {
	var m model.Content
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Content, error) {
	var records []*model.Content
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(records), nil
}

func (r *ContentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Content{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
