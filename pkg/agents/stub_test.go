package agents

import (
	"context"
	"sync"

	"financegpt-be/pkg/llm"
)

// stubProvider answers every Generate/Chat call with a fixed response
// and streams a scripted chunk sequence.
type stubProvider struct {
	mu        sync.Mutex
	response  string
	err       error
	chunks    []llm.StreamChunk
	calls     int
	lastInput string
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if len(history) > 0 {
		p.lastInput = history[len(history)-1].Content
	}
	return p.response, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.lastInput = prompt
	return p.response, p.err
}

func (p *stubProvider) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) <-chan llm.StreamChunk {
	out := make(chan llm.StreamChunk, llm.StreamBufferSize)
	go func() {
		defer close(out)
		for _, chunk := range p.chunks {
			out <- chunk
			if chunk.Done {
				return
			}
		}
		out <- llm.StreamChunk{Done: true, Err: p.err}
	}()
	return out
}

type stubQueryAgent struct {
	mu      sync.Mutex
	payload string
	err     error
	calls   int
}

func (a *stubQueryAgent) Run(ctx context.Context, query string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.payload, a.err
}

func (a *stubQueryAgent) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

type stubListingAgent struct {
	mu      sync.Mutex
	payload string
	err     error
	calls   int
}

func (a *stubListingAgent) Run(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.payload, a.err
}

func (a *stubListingAgent) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}
