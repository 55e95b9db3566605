package agents

import (
	"context"
	"strings"
	"testing"
)

type stubSelector struct {
	rows    []map[string]interface{}
	lastSQL string
}

func (s *stubSelector) SelectRaw(ctx context.Context, query string) ([]map[string]interface{}, error) {
	s.lastSQL = query
	return s.rows, nil
}

func TestSQLAgentStripsFencesAndExecutes(t *testing.T) {
	provider := &stubProvider{response: "```sql\nSELECT name FROM financial_products;\n```"}
	selector := &stubSelector{rows: []map[string]interface{}{{"name": "SecureGrowth"}}}
	agent := NewSQLAgent(provider, selector)

	payload, err := agent.Run(context.Background(), "what products?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if selector.lastSQL != "SELECT name FROM financial_products" {
		t.Fatalf("fences or trailing semicolon not stripped: %q", selector.lastSQL)
	}
	if !strings.Contains(payload, "SecureGrowth") {
		t.Fatalf("rows missing from payload: %q", payload)
	}
}

func TestSQLAgentRejectsNonSelect(t *testing.T) {
	provider := &stubProvider{response: "DROP TABLE financial_products"}
	selector := &stubSelector{}
	agent := NewSQLAgent(provider, selector)

	if _, err := agent.Run(context.Background(), "delete everything"); err == nil {
		t.Fatal("non-SELECT statements must be rejected")
	}
	if selector.lastSQL != "" {
		t.Fatalf("rejected statement was still executed: %q", selector.lastSQL)
	}
}
