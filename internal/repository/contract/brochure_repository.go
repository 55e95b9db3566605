package contract

import (
	"context"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/repository/specification"
)

type BrochureRepository interface {
	Create(ctx context.Context, chunk *entity.BrochureChunk) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BrochureChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilarWithScore returns the chunks nearest to the query
	// embedding along with their cosine similarity, highest first.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredBrochureChunk, error)
}
