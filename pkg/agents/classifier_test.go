package agents

import (
	"context"
	"errors"
	"testing"
)

func TestParseCategories(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "single category",
			response: "STRUCTURED_DATA",
			want:     []string{"STRUCTURED_DATA"},
		},
		{
			name:     "two categories with whitespace",
			response: " STRUCTURED_DATA , DOCUMENT_EXTRACTION ",
			want:     []string{"STRUCTURED_DATA", "DOCUMENT_EXTRACTION"},
		},
		{
			name:     "all three",
			response: "STRUCTURED_DATA,DOCUMENT_EXTRACTION,EXTERNAL_OFFERS",
			want:     []string{"STRUCTURED_DATA", "DOCUMENT_EXTRACTION", "EXTERNAL_OFFERS"},
		},
		{
			name:     "legacy token names",
			response: "DB_QUERY,PDF_EXTRACTION,EXTERNAL_API",
			want:     []string{"STRUCTURED_DATA", "DOCUMENT_EXTRACTION", "EXTERNAL_OFFERS"},
		},
		{
			name:     "both shorthand expands to two categories",
			response: "BOTH",
			want:     []string{"STRUCTURED_DATA", "DOCUMENT_EXTRACTION"},
		},
		{
			name:     "both plus offers",
			response: "BOTH,EXTERNAL_OFFERS",
			want:     []string{"STRUCTURED_DATA", "DOCUMENT_EXTRACTION", "EXTERNAL_OFFERS"},
		},
		{
			name:     "unrecognized tokens dropped silently",
			response: "STRUCTURED_DATA,SOMETHING_ELSE,,",
			want:     []string{"STRUCTURED_DATA"},
		},
		{
			name:     "lowercase tolerated",
			response: "structured_data, document_extraction",
			want:     []string{"STRUCTURED_DATA", "DOCUMENT_EXTRACTION"},
		},
		{
			name:     "empty response",
			response: "",
			want:     []string{},
		},
		{
			name:     "garbage only",
			response: "I think the answer is yes",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCategories(tt.response).Values()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	provider := &stubProvider{response: "STRUCTURED_DATA,DOCUMENT_EXTRACTION"}
	classifier := NewClassifier(provider)

	first, err := classifier.Classify(context.Background(), "What products do you have?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := classifier.Classify(context.Background(), "What products do you have?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("classification changed across identical calls: %v vs %v", again, first)
		}
		for c := range first {
			if !again.Has(c) {
				t.Fatalf("classification changed across identical calls: %v vs %v", again, first)
			}
		}
	}
}

func TestClassifyPropagatesProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("model unavailable")}
	classifier := NewClassifier(provider)

	if _, err := classifier.Classify(context.Background(), "anything"); err == nil {
		t.Fatal("expected an error when the provider fails")
	}
}
