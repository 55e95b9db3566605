package openai

import (
	"context"
	"fmt"

	"financegpt-be/pkg/llm"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIProvider struct {
	client openaisdk.Client
	model  string
}

// Ensure OpenAIProvider implements LLMProvider
var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openaisdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *OpenAIProvider) buildParams(history []llm.Message, opts ...llm.Option) openaisdk.ChatCompletionNewParams {
	options := &llm.Options{
		Temperature: 0.7,
		Model:       p.model,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			messages = append(messages, openaisdk.SystemMessage(msg.Content))
		case "assistant", "model":
			messages = append(messages, openaisdk.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(msg.Content))
		}
	}

	params := openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(options.Model),
		Messages:    messages,
		Temperature: openaisdk.Float(options.Temperature),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openaisdk.Int(int64(options.MaxTokens))
	}
	return params
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, p.buildParams(history, opts...))
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func (p *OpenAIProvider) ChatStream(ctx context.Context, history []llm.Message, opts ...llm.Option) <-chan llm.StreamChunk {
	out := make(chan llm.StreamChunk, llm.StreamBufferSize)

	go func() {
		defer close(out)

		stream := p.client.Chat.Completions.NewStreaming(ctx, p.buildParams(history, opts...))
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				continue
			}
			select {
			case out <- llm.StreamChunk{Content: chunk.Choices[0].Delta.Content}:
			case <-ctx.Done():
				out <- llm.StreamChunk{Done: true, Err: ctx.Err()}
				return
			}
		}

		var err error
		if streamErr := stream.Err(); streamErr != nil {
			err = fmt.Errorf("openai stream failed: %w", streamErr)
		}
		out <- llm.StreamChunk{Done: true, Err: err}
	}()

	return out
}
