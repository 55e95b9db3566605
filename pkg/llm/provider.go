package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// StreamChunk is one unit of streamed model output. The chunk with Done set
// is the single authoritative end-of-stream signal; Err is only populated on
// that terminal chunk when generation failed before or during streaming.
type StreamChunk struct {
	Content string
	Done    bool
	Err     error
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// StreamBufferSize bounds the producer/consumer channel so generation cannot
// run unboundedly ahead of a slow websocket consumer.
const StreamBufferSize = 32

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	// ChatStream sends a chat history and streams the response over a bounded
	// channel. The channel delivers exactly one terminal chunk (Done=true),
	// even when the underlying call fails; a failure before the first token
	// arrives as a terminal chunk with Err set and no content chunks before
	// it. Cancelling ctx stops production without blocking the producer.
	ChatStream(ctx context.Context, history []Message, options ...Option) <-chan StreamChunk
}
