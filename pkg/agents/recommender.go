package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"financegpt-be/internal/constant"
	"financegpt-be/pkg/llm"
)

// arrayPattern finds the first bracket-delimited substring, spanning
// newlines, for the fallback parse.
var arrayPattern = regexp.MustCompile(`(?s)\[.*?\]`)

// Recommender turns the final answer plus the original query into a
// list of follow-up questions. It never fails outward: any parsing or
// generation problem degrades to an empty list, because a missing
// recommendation is cosmetic while an error would abort an otherwise
// successful answer.
type Recommender struct {
	provider llm.LLMProvider
}

func NewRecommender(provider llm.LLMProvider) *Recommender {
	return &Recommender{provider: provider}
}

func (r *Recommender) Extract(ctx context.Context, query, answer string) []string {
	prompt := fmt.Sprintf(constant.RecommendationsPromptV1, query, answer)
	response, err := r.provider.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		return []string{}
	}
	return ParseRecommendations(response)
}

// ParseRecommendations attempts, in order: the whole response as a
// JSON array, then the first bracket-delimited substring, then gives
// up with an empty list. Non-string elements are skipped.
func ParseRecommendations(response string) []string {
	trimmed := strings.TrimSpace(response)

	if list, ok := parseStringList(trimmed); ok {
		return list
	}

	if match := arrayPattern.FindString(trimmed); match != "" {
		if list, ok := parseStringList(match); ok {
			return list
		}
	}

	return []string{}
}

func parseStringList(raw string) ([]string, bool) {
	var values []interface{}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, false
	}
	list := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			list = append(list, s)
		}
	}
	return list, true
}
