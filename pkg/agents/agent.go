package agents

import "context"

// Category is a routing label assigned to a query. The classifier may
// emit any subset of the three categories for one query.
type Category string

const (
	CategoryStructuredData     Category = "STRUCTURED_DATA"
	CategoryDocumentExtraction Category = "DOCUMENT_EXTRACTION"
	CategoryExternalOffers     Category = "EXTERNAL_OFFERS"
)

// CategorySet is an arbitrary subset of the routing categories.
type CategorySet map[Category]struct{}

func NewCategorySet(categories ...Category) CategorySet {
	set := make(CategorySet, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}

func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}

func (s CategorySet) Add(c Category) {
	s[c] = struct{}{}
}

// Values returns the categories in a fixed order for logging and
// persistence.
func (s CategorySet) Values() []string {
	ordered := []Category{CategoryStructuredData, CategoryDocumentExtraction, CategoryExternalOffers}
	values := make([]string, 0, len(s))
	for _, c := range ordered {
		if s.Has(c) {
			values = append(values, string(c))
		}
	}
	return values
}

// QueryAgent answers one narrow kind of question about a query.
type QueryAgent interface {
	Run(ctx context.Context, query string) (string, error)
}

// ListingAgent answers a categorical lookup that takes no query.
type ListingAgent interface {
	Run(ctx context.Context) (string, error)
}

// AgentResult is the outcome of one agent invocation. Exactly one of
// Payload or Err is meaningful.
type AgentResult struct {
	Payload string
	Err     error
}

func (r AgentResult) OK() bool {
	return r.Err == nil
}

// MergedContext combines the caller's profile, the query, and the
// three agent slots. A slot that was not selected or whose agent
// failed carries the unavailable marker, never an empty field, so the
// final prompt always has a stable shape.
type MergedContext struct {
	Profile        string
	Query          string
	StructuredData string
	Documents      string
	Offers         string
}
