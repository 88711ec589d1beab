package translate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// GeminiBackend translates chunks through the Google Gemini API.
type GeminiBackend struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiBackend creates a new Gemini translation backend
func NewGeminiBackend(apiKey, model string) *GeminiBackend {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiBackend{
		apiKey: apiKey,
		model:  model,
	}
}

func (b *GeminiBackend) getClient(ctx context.Context) (*genai.Client, error) {
	b.once.Do(func() {
		b.client, b.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  b.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return b.client, b.initErr
}

// TranslateChunk translates one chunk of text
func (b *GeminiBackend) TranslateChunk(ctx context.Context, req ChunkRequest) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	client, err := b.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("Gemini client error: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, b.model, genai.Text(Prompt(req)), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](samplingTemperature),
		TopP:            genai.Ptr[float32](samplingTopP),
		MaxOutputTokens: maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translation, nil
}

// Name returns the backend name
func (b *GeminiBackend) Name() string {
	return "gemini"
}

// IsAvailable checks if the backend is configured
func (b *GeminiBackend) IsAvailable() error {
	if b.apiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
