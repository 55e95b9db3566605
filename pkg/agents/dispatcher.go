package agents

import (
	"context"
	"fmt"
	"sync"

	"financegpt-be/internal/constant"
)

// Dispatcher fans a query out to the agents selected by the category
// set. Selected agents run concurrently; a failure in one never
// prevents the others' results from reaching the merge step.
type Dispatcher struct {
	structured QueryAgent
	document   QueryAgent
	offers     ListingAgent
}

func NewDispatcher(structured QueryAgent, document QueryAgent, offers ListingAgent) *Dispatcher {
	return &Dispatcher{
		structured: structured,
		document:   document,
		offers:     offers,
	}
}

// Dispatch invokes the subset of agents whose category is present and
// joins them with a fan-in barrier. Unselected and failed slots carry
// the unavailable marker.
func (d *Dispatcher) Dispatch(ctx context.Context, categories CategorySet, query, profile string) MergedContext {
	var (
		wg         sync.WaitGroup
		structured = AgentResult{Err: fmt.Errorf("not selected")}
		document   = AgentResult{Err: fmt.Errorf("not selected")}
		offers     = AgentResult{Err: fmt.Errorf("not selected")}
	)

	if categories.Has(CategoryStructuredData) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			structured = runQueryAgent(ctx, d.structured, query)
		}()
	}
	if categories.Has(CategoryDocumentExtraction) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			document = runQueryAgent(ctx, d.document, query)
		}()
	}
	if categories.Has(CategoryExternalOffers) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			offers = runListingAgent(ctx, d.offers)
		}()
	}

	wg.Wait()

	return MergedContext{
		Profile:        profile,
		Query:          query,
		StructuredData: slotPayload(structured),
		Documents:      slotPayload(document),
		Offers:         slotPayload(offers),
	}
}

func runQueryAgent(ctx context.Context, agent QueryAgent, query string) (result AgentResult) {
	defer func() {
		if r := recover(); r != nil {
			result = AgentResult{Err: fmt.Errorf("agent panic: %v", r)}
		}
	}()
	payload, err := agent.Run(ctx, query)
	if err != nil {
		return AgentResult{Err: err}
	}
	return AgentResult{Payload: payload}
}

func runListingAgent(ctx context.Context, agent ListingAgent) (result AgentResult) {
	defer func() {
		if r := recover(); r != nil {
			result = AgentResult{Err: fmt.Errorf("agent panic: %v", r)}
		}
	}()
	payload, err := agent.Run(ctx)
	if err != nil {
		return AgentResult{Err: err}
	}
	return AgentResult{Payload: payload}
}

func slotPayload(result AgentResult) string {
	if !result.OK() {
		return constant.AgentContextUnavailable
	}
	return result.Payload
}
