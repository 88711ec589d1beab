package transcribe

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend transcribes audio through the OpenAI Whisper API.
type OpenAIBackend struct {
	apiKey string
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates a new OpenAI Whisper backend
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAIBackend{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Transcribe uploads the audio file and returns the recognized text
func (b *OpenAIBackend) Transcribe(ctx context.Context, audioPath, languageHint string) (Transcript, error) {
	if b.apiKey == "" {
		return Transcript{}, fmt.Errorf("OpenAI API key not found")
	}

	req := openai.AudioRequest{
		Model:    b.model,
		FilePath: audioPath,
		Language: languageHint,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	resp, err := b.client.CreateTranscription(ctx, req)
	if err != nil {
		return Transcript{}, fmt.Errorf("OpenAI transcription error: %w", err)
	}

	return Transcript{
		Text:     strings.TrimSpace(resp.Text),
		Language: resp.Language,
	}, nil
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
