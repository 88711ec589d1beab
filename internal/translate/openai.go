package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend translates chunks through the OpenAI chat completion API.
type OpenAIBackend struct {
	apiKey string
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates a new OpenAI translation backend
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIBackend{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// TranslateChunk translates one chunk of text
func (b *OpenAIBackend) TranslateChunk(ctx context.Context, req ChunkRequest) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: Prompt(req),
			},
		},
		Temperature: samplingTemperature,
		TopP:        samplingTopP,
		MaxTokens:   maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the backend name
func (b *OpenAIBackend) Name() string {
	return "openai"
}

// IsAvailable checks if the backend is configured
func (b *OpenAIBackend) IsAvailable() error {
	if b.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
