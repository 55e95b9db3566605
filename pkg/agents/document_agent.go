package agents

import (
	"context"
	"fmt"
	"strings"

	"financegpt-be/pkg/embedding"
)

// ScoredDocument is one retrieved brochure passage with its cosine
// similarity to the query.
type ScoredDocument struct {
	Source     string
	Page       int
	Content    string
	Similarity float64
}

// DocumentSearcher retrieves the passages nearest to a query
// embedding, highest similarity first.
type DocumentSearcher interface {
	Search(ctx context.Context, queryEmbedding []float32, limit int) ([]ScoredDocument, error)
}

// DocumentAgent answers a query from product brochures by embedding
// the query and assembling the nearest passages into one payload.
type DocumentAgent struct {
	embedder embedding.EmbeddingProvider
	searcher DocumentSearcher
	limit    int
}

func NewDocumentAgent(embedder embedding.EmbeddingProvider, searcher DocumentSearcher, limit int) *DocumentAgent {
	if limit <= 0 {
		limit = 4
	}
	return &DocumentAgent{
		embedder: embedder,
		searcher: searcher,
		limit:    limit,
	}
}

func (a *DocumentAgent) Run(ctx context.Context, query string) (string, error) {
	resp, err := a.embedder.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return "", fmt.Errorf("query embedding failed: %w", err)
	}

	docs, err := a.searcher.Search(ctx, resp.Embedding.Values, a.limit)
	if err != nil {
		return "", fmt.Errorf("brochure search failed: %w", err)
	}
	if len(docs) == 0 {
		return "No matching brochure passages were found.", nil
	}

	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "[%s, page %d] %s", doc.Source, doc.Page, doc.Content)
	}
	return sb.String(), nil
}
