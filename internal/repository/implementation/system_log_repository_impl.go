package implementation

import (
	"context"

	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/mapper"
	"contentcraft-be/internal/model"
	"contentcraft-be/internal/repository/contract"
	"contentcraft-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SystemLogMapper
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewSystemLogMapper(),
	}
}

func (r *SystemLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, log *entity.SystemLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *SystemLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemLog, error) {
	var records []*model.SystemLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.SystemLog, len(records))
	for i, rec := range records {
		entities[i] = r.mapper.ToEntity(rec)
	}
	return entities, nil
}

func (r *SystemLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SystemLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
