package implementation

import (
	"context"
	"errors"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/mapper"
	"financegpt-be/internal/model"
	"financegpt-be/internal/repository/contract"
	"financegpt-be/internal/repository/specification"

	"gorm.io/gorm"
)

type QueryLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QueryLogMapper
}

func NewQueryLogRepository(db *gorm.DB) contract.QueryLogRepository {
	return &QueryLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewQueryLogMapper(),
	}
}

func (r *QueryLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QueryLogRepositoryImpl) Create(ctx context.Context, log *entity.QueryLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueryLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QueryLog, error) {
	var m model.QueryLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QueryLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QueryLog, error) {
	var models []*model.QueryLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.QueryLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *QueryLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.QueryLog{}).Count(&count).Error
	return count, err
}
