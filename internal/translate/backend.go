package translate

import (
	"context"
	"fmt"
)

// Sampling configuration shared by all backends. Low temperature favors
// consistency over creativity.
const (
	samplingTemperature = 0.2
	samplingTopP        = 0.8
	maxOutputTokens     = 1024
)

// ChunkRequest describes one chunk translation request.
type ChunkRequest struct {
	Text       string
	SourceLang string // ISO 639-1
	TargetLang string // ISO 639-1
}

// Backend issues a single translation request for one chunk of text.
type Backend interface {
	// TranslateChunk translates one chunk and returns the translated text.
	TranslateChunk(ctx context.Context, req ChunkRequest) (string, error)

	// Name returns the backend name
	Name() string

	// IsAvailable checks if the backend is properly configured and reachable
	IsAvailable() error
}

// Prompt renders the deterministic prompt template embedding one chunk.
func Prompt(req ChunkRequest) string {
	return fmt.Sprintf(
		"Translate the following %s text into natural, accurate %s. Respond with only the translation and nothing else.\n\n%s",
		LanguageName(req.SourceLang), LanguageName(req.TargetLang), req.Text)
}
