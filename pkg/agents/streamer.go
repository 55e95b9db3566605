package agents

import (
	"context"
	"fmt"

	"financegpt-be/internal/constant"
	"financegpt-be/pkg/llm"
)

// Streamer issues the single streaming generation call over the merged
// context. Chunks are relayed through a bounded channel in generation
// order; the Done chunk is the single authoritative end-of-stream
// signal, emitted even when the underlying call fails mid-stream.
type Streamer struct {
	provider llm.LLMProvider
}

func NewStreamer(provider llm.LLMProvider) *Streamer {
	return &Streamer{provider: provider}
}

// BuildPrompt assembles the final synthesis prompt. Unavailable slots
// already carry their marker, so the prompt shape is stable.
func (s *Streamer) BuildPrompt(mc MergedContext, chatHistory string) string {
	return fmt.Sprintf(constant.FinalResponsePromptV1,
		mc.Profile,
		chatHistory,
		mc.Query,
		mc.StructuredData,
		mc.Documents,
		mc.Offers,
	)
}

// Stream starts the streaming call and returns the chunk channel.
// Consumers must drain until a chunk with Done is observed.
func (s *Streamer) Stream(ctx context.Context, mc MergedContext, chatHistory string) <-chan llm.StreamChunk {
	prompt := s.BuildPrompt(mc, chatHistory)
	history := []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: prompt},
	}
	return s.provider.ChatStream(ctx, history, llm.WithTemperature(0.7))
}
