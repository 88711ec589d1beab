package translate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/redub/internal/chunk"
)

// Options tune chunking and the per-chunk retry loop.
type Options struct {
	SourceLang  string
	TargetLang  string
	MaxChunkLen int
	MaxRetries  int

	// Delay is called between failed attempts for the same chunk, with the
	// attempt number that just failed. Tests inject a no-op delay.
	Delay func(attempt int)
}

// DefaultOptions returns the options used in production
func DefaultOptions() Options {
	return Options{
		SourceLang:  "en",
		TargetLang:  "ko",
		MaxChunkLen: 500,
		MaxRetries:  3,
		Delay: func(int) {
			time.Sleep(2 * time.Second)
		},
	}
}

// Translator converts source-language text to the target language chunk by
// chunk. Chunks are processed sequentially, in order, and a chunk that
// exhausts its retry budget falls back to its original source text so the
// job never loses content.
type Translator struct {
	backend Backend
	options Options
	logger  zerolog.Logger
}

// New creates a translator. A nil backend means translation is disabled and
// Translate passes its input through unchanged.
func New(backend Backend, options Options, logger zerolog.Logger) *Translator {
	if options.MaxChunkLen <= 0 {
		options.MaxChunkLen = 500
	}
	if options.MaxRetries <= 0 {
		options.MaxRetries = 3
	}
	if options.Delay == nil {
		options.Delay = DefaultOptions().Delay
	}
	return &Translator{
		backend: backend,
		options: options,
		logger:  logger,
	}
}

// Translate returns the target-language rendition of text. With no backend
// configured, or one that reports itself unavailable, the input is returned
// unchanged. The error is non-nil only when the translator itself is
// misconfigured, never for backend failures.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	if t.options.MaxChunkLen <= 0 || t.options.MaxRetries <= 0 || t.options.Delay == nil {
		return "", fmt.Errorf("translator configuration is invalid")
	}

	if t.backend == nil {
		t.logger.Warn().Msg("No translation backend configured, using source text")
		return text, nil
	}
	if err := t.backend.IsAvailable(); err != nil {
		t.logger.Warn().Err(err).Str("backend", t.backend.Name()).
			Msg("Translation backend unavailable, using source text")
		return text, nil
	}

	chunks := chunk.Split(text, t.options.MaxChunkLen)
	if len(chunks) == 0 {
		return "", nil
	}

	translated := make([]string, 0, len(chunks))
	for i, c := range chunks {
		translated = append(translated, t.translateChunk(ctx, c, i, len(chunks)))
	}

	return strings.Join(translated, " "), nil
}

// translateChunk attempts one chunk up to the retry budget and falls back to
// the source text when the budget is exhausted.
func (t *Translator) translateChunk(ctx context.Context, text string, index, total int) string {
	req := ChunkRequest{
		Text:       text,
		SourceLang: t.options.SourceLang,
		TargetLang: t.options.TargetLang,
	}

	for attempt := 1; attempt <= t.options.MaxRetries; attempt++ {
		t.logger.Info().
			Int("chunk", index+1).
			Int("total", total).
			Int("attempt", attempt).
			Msg("Translating chunk")

		result, err := t.backend.TranslateChunk(ctx, req)
		if err == nil {
			if trimmed := strings.TrimSpace(result); trimmed != "" {
				return trimmed
			}
			err = fmt.Errorf("empty translation returned")
		}

		t.logger.Warn().Err(err).
			Int("chunk", index+1).
			Int("attempt", attempt).
			Int("max_retries", t.options.MaxRetries).
			Msg("Chunk translation failed")

		if attempt < t.options.MaxRetries {
			t.options.Delay(attempt)
		}
	}

	t.logger.Warn().
		Int("chunk", index+1).
		Msg("Chunk translation exhausted retries, keeping source text")
	return text
}

// SaveTranslation persists the final joined translation as a plain-text side
// artifact, overwritten on each run.
func SaveTranslation(textDir, text string) (string, error) {
	if err := os.MkdirAll(textDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create text directory: %w", err)
	}

	outputFile := filepath.Join(textDir, "translated_text.txt")
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write translation file: %w", err)
	}

	return outputFile, nil
}
