package mapper

import (
	"financegpt-be/internal/entity"
	"financegpt-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type BrochureMapper struct{}

func NewBrochureMapper() *BrochureMapper {
	return &BrochureMapper{}
}

func (m *BrochureMapper) ToEntity(b *model.BrochureChunk) *entity.BrochureChunk {
	if b == nil {
		return nil
	}

	return &entity.BrochureChunk{
		Id:        b.Id,
		Source:    b.Source,
		Page:      b.Page,
		Content:   b.Content,
		Embedding: b.Embedding.Slice(),
		CreatedAt: b.CreatedAt,
	}
}

func (m *BrochureMapper) ToModel(b *entity.BrochureChunk) *model.BrochureChunk {
	if b == nil {
		return nil
	}

	return &model.BrochureChunk{
		Id:        b.Id,
		Source:    b.Source,
		Page:      b.Page,
		Content:   b.Content,
		Embedding: pgvector.NewVector(b.Embedding),
		CreatedAt: b.CreatedAt,
	}
}
