package implementation

import (
	"context"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/mapper"
	"financegpt-be/internal/model"
	"financegpt-be/internal/repository/contract"
	"financegpt-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type BrochureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BrochureMapper
}

func NewBrochureRepository(db *gorm.DB) contract.BrochureRepository {
	return &BrochureRepositoryImpl{
		db:     db,
		mapper: mapper.NewBrochureMapper(),
	}
}

func (r *BrochureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BrochureRepositoryImpl) Create(ctx context.Context, chunk *entity.BrochureChunk) error {
	m := r.mapper.ToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ToEntity(m)
	return nil
}

func (r *BrochureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BrochureChunk, error) {
	var models []*model.BrochureChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.BrochureChunk, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *BrochureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.BrochureChunk{}).Count(&count).Error
	return count, err
}

type scoredBrochureRow struct {
	model.BrochureChunk
	Similarity float64
}

func (r *BrochureRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredBrochureChunk, error) {
	if limit <= 0 {
		limit = 4
	}
	vec := pgvector.NewVector(embedding)

	var rows []scoredBrochureRow
	err := r.db.WithContext(ctx).
		Model(&model.BrochureChunk{}).
		Select("brochure_chunks.*, 1 - (embedding <=> ?) AS similarity", vec).
		Order(gorm.Expr("embedding <=> ?", vec)).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]*entity.ScoredBrochureChunk, len(rows))
	for i, row := range rows {
		results[i] = &entity.ScoredBrochureChunk{
			Chunk:      r.mapper.ToEntity(&row.BrochureChunk),
			Similarity: row.Similarity,
		}
	}
	return results, nil
}
