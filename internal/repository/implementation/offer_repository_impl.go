package implementation

import (
	"context"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/mapper"
	"financegpt-be/internal/model"
	"financegpt-be/internal/repository/contract"
	"financegpt-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OfferRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OfferMapper
}

func NewOfferRepository(db *gorm.DB) contract.OfferRepository {
	return &OfferRepositoryImpl{
		db:     db,
		mapper: mapper.NewOfferMapper(),
	}
}

func (r *OfferRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OfferRepositoryImpl) Create(ctx context.Context, offer *entity.Offer) error {
	m := r.mapper.ToModel(offer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*offer = *r.mapper.ToEntity(m)
	return nil
}

func (r *OfferRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Offer, error) {
	var models []*model.Offer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Offer, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *OfferRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Offer{}).Count(&count).Error
	return count, err
}
