package agents

import (
	"context"
	"errors"
	"testing"

	"financegpt-be/internal/constant"
)

func TestDispatchInvokesExactlySelectedAgents(t *testing.T) {
	subsets := [][]Category{
		{},
		{CategoryStructuredData},
		{CategoryDocumentExtraction},
		{CategoryExternalOffers},
		{CategoryStructuredData, CategoryDocumentExtraction},
		{CategoryStructuredData, CategoryExternalOffers},
		{CategoryDocumentExtraction, CategoryExternalOffers},
		{CategoryStructuredData, CategoryDocumentExtraction, CategoryExternalOffers},
	}

	for _, subset := range subsets {
		categories := NewCategorySet(subset...)
		structured := &stubQueryAgent{payload: "rows"}
		document := &stubQueryAgent{payload: "passages"}
		offers := &stubListingAgent{payload: "promos"}
		dispatcher := NewDispatcher(structured, document, offers)

		dispatcher.Dispatch(context.Background(), categories, "q", "p")

		wantStructured := 0
		if categories.Has(CategoryStructuredData) {
			wantStructured = 1
		}
		wantDocument := 0
		if categories.Has(CategoryDocumentExtraction) {
			wantDocument = 1
		}
		wantOffers := 0
		if categories.Has(CategoryExternalOffers) {
			wantOffers = 1
		}

		if structured.callCount() != wantStructured {
			t.Errorf("subset %v: structured agent called %d times, want %d", subset, structured.callCount(), wantStructured)
		}
		if document.callCount() != wantDocument {
			t.Errorf("subset %v: document agent called %d times, want %d", subset, document.callCount(), wantDocument)
		}
		if offers.callCount() != wantOffers {
			t.Errorf("subset %v: offers agent called %d times, want %d", subset, offers.callCount(), wantOffers)
		}
	}
}

func TestDispatchIsolatesAgentFailure(t *testing.T) {
	structured := &stubQueryAgent{err: errors.New("timeout")}
	document := &stubQueryAgent{payload: "brochure text"}
	offers := &stubListingAgent{payload: "promos"}
	dispatcher := NewDispatcher(structured, document, offers)

	categories := NewCategorySet(CategoryStructuredData, CategoryDocumentExtraction)
	merged := dispatcher.Dispatch(context.Background(), categories, "q", "p")

	if merged.StructuredData != constant.AgentContextUnavailable {
		t.Errorf("failed slot should carry the unavailable marker, got %q", merged.StructuredData)
	}
	if merged.Documents != "brochure text" {
		t.Errorf("successful slot lost its payload, got %q", merged.Documents)
	}
	if merged.Offers != constant.AgentContextUnavailable {
		t.Errorf("unselected slot should carry the unavailable marker, got %q", merged.Offers)
	}
}

func TestDispatchUnselectedSlotsCarryMarker(t *testing.T) {
	structured := &stubQueryAgent{payload: "rows"}
	document := &stubQueryAgent{payload: "passages"}
	offers := &stubListingAgent{payload: "promos"}
	dispatcher := NewDispatcher(structured, document, offers)

	merged := dispatcher.Dispatch(context.Background(), NewCategorySet(CategoryStructuredData), "what rates?", "profile text")

	if merged.Query != "what rates?" {
		t.Errorf("query not carried into merged context: %q", merged.Query)
	}
	if merged.Profile != "profile text" {
		t.Errorf("profile not carried into merged context: %q", merged.Profile)
	}
	if merged.StructuredData != "rows" {
		t.Errorf("selected slot missing payload: %q", merged.StructuredData)
	}
	if merged.Documents != constant.AgentContextUnavailable || merged.Offers != constant.AgentContextUnavailable {
		t.Errorf("unselected slots must carry the unavailable marker: %+v", merged)
	}
}

type panickyAgent struct{}

func (panickyAgent) Run(ctx context.Context, query string) (string, error) {
	panic("boom")
}

func TestDispatchRecoversAgentPanic(t *testing.T) {
	document := &stubQueryAgent{payload: "passages"}
	dispatcher := NewDispatcher(panickyAgent{}, document, &stubListingAgent{})

	categories := NewCategorySet(CategoryStructuredData, CategoryDocumentExtraction)
	merged := dispatcher.Dispatch(context.Background(), categories, "q", "p")

	if merged.StructuredData != constant.AgentContextUnavailable {
		t.Errorf("panicking slot should degrade to the unavailable marker, got %q", merged.StructuredData)
	}
	if merged.Documents != "passages" {
		t.Errorf("panic in one agent must not affect the others, got %q", merged.Documents)
	}
}
