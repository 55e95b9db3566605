package service

import (
	"context"

	"financegpt-be/internal/repository/unitofwork"
	"financegpt-be/pkg/agents"
)

// ProductSelector adapts the product repository to the structured-data
// agent's raw SELECT contract.
type ProductSelector struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProductSelector(uowFactory unitofwork.RepositoryFactory) *ProductSelector {
	return &ProductSelector{uowFactory: uowFactory}
}

func (p *ProductSelector) SelectRaw(ctx context.Context, query string) ([]map[string]interface{}, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().SelectRaw(ctx, query)
}

// BrochureSearcher adapts the brochure repository's vector search to
// the document agent's contract.
type BrochureSearcher struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBrochureSearcher(uowFactory unitofwork.RepositoryFactory) *BrochureSearcher {
	return &BrochureSearcher{uowFactory: uowFactory}
}

func (b *BrochureSearcher) Search(ctx context.Context, queryEmbedding []float32, limit int) ([]agents.ScoredDocument, error) {
	uow := b.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.BrochureRepository().SearchSimilarWithScore(ctx, queryEmbedding, limit)
	if err != nil {
		return nil, err
	}

	docs := make([]agents.ScoredDocument, len(scored))
	for i, s := range scored {
		docs[i] = agents.ScoredDocument{
			Source:     s.Chunk.Source,
			Page:       s.Chunk.Page,
			Content:    s.Chunk.Content,
			Similarity: s.Similarity,
		}
	}
	return docs, nil
}
