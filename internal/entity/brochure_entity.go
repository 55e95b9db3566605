package entity

import (
	"time"

	"github.com/google/uuid"
)

// BrochureChunk is one embedded page/section of a product brochure.
type BrochureChunk struct {
	Id        uuid.UUID
	Source    string
	Page      int
	Content   string
	Embedding []float32
	CreatedAt time.Time
}

// ScoredBrochureChunk pairs a chunk with its cosine similarity to a query.
type ScoredBrochureChunk struct {
	Chunk      *BrochureChunk
	Similarity float64
}
