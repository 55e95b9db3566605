package agents

import (
	"context"
	"fmt"
	"strings"

	"financegpt-be/internal/constant"
	"financegpt-be/pkg/llm"
)

// Classifier maps free-form query text to a set of routing categories
// via one zero-temperature generation call.
type Classifier struct {
	provider llm.LLMProvider
}

func NewClassifier(provider llm.LLMProvider) *Classifier {
	return &Classifier{provider: provider}
}

func (c *Classifier) Classify(ctx context.Context, query string) (CategorySet, error) {
	prompt := fmt.Sprintf(constant.ClassificationPromptV1, query)
	response, err := c.provider.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	return ParseCategories(response), nil
}

// ParseCategories turns a comma-separated token list into a
// CategorySet. Tokens are trimmed and upper-cased; unrecognized tokens
// are dropped silently to tolerate model drift. Legacy token names
// from earlier prompt revisions are still accepted.
func ParseCategories(response string) CategorySet {
	set := NewCategorySet()
	for _, token := range strings.Split(response, ",") {
		token = strings.ToUpper(strings.TrimSpace(token))
		switch token {
		case "":
			continue
		case string(CategoryStructuredData), "DB_QUERY":
			set.Add(CategoryStructuredData)
		case string(CategoryDocumentExtraction), "PDF_EXTRACTION":
			set.Add(CategoryDocumentExtraction)
		case string(CategoryExternalOffers), "EXTERNAL_API":
			set.Add(CategoryExternalOffers)
		case "BOTH":
			set.Add(CategoryStructuredData)
			set.Add(CategoryDocumentExtraction)
		}
	}
	return set
}
