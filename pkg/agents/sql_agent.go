package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"financegpt-be/internal/constant"
	"financegpt-be/pkg/llm"
)

// RawSelector executes a read-only SQL statement and returns the
// result rows as generic maps.
type RawSelector interface {
	SelectRaw(ctx context.Context, query string) ([]map[string]interface{}, error)
}

// SQLAgent converts a natural language question into a SELECT against
// the product catalog and returns the rows as a JSON payload.
type SQLAgent struct {
	provider llm.LLMProvider
	selector RawSelector
}

func NewSQLAgent(provider llm.LLMProvider, selector RawSelector) *SQLAgent {
	return &SQLAgent{
		provider: provider,
		selector: selector,
	}
}

func (a *SQLAgent) Run(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(constant.SQLGenerationPromptV1, query)
	raw, err := a.provider.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("sql generation failed: %w", err)
	}

	sql := sanitizeSQL(raw)
	if !strings.HasPrefix(strings.ToUpper(sql), "SELECT") {
		return "", fmt.Errorf("generated statement is not a SELECT")
	}

	rows, err := a.selector.SelectRaw(ctx, sql)
	if err != nil {
		return "", fmt.Errorf("sql execution failed: %w", err)
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("sql result encoding failed: %w", err)
	}
	return string(payload), nil
}

// sanitizeSQL strips markdown code fences the model sometimes wraps
// around the statement despite being told not to.
func sanitizeSQL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```sql")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), ";")
	return strings.TrimSpace(s)
}
