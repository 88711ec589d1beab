package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/redub/internal/chunk"
)

// Result is the ordered set of audio files produced for one text. A text
// that fits in a single chunk produces exactly one path; longer texts
// produce one file per chunk, indexed in order. The files are never merged.
type Result struct {
	Paths []string
}

// Single returns the sole output path when the result is a single asset.
func (r *Result) Single() (string, bool) {
	if r != nil && len(r.Paths) == 1 {
		return r.Paths[0], true
	}
	return "", false
}

// Synthesizer renders target-language text into one or more audio files
// under the output directory.
type Synthesizer struct {
	provider    Provider
	maxChunkLen int
	outputDir   string
	logger      zerolog.Logger
}

// NewSynthesizer creates a synthesizer over the given provider
func NewSynthesizer(provider Provider, maxChunkLen int, outputDir string, logger zerolog.Logger) *Synthesizer {
	if maxChunkLen <= 0 {
		maxChunkLen = 500
	}
	return &Synthesizer{
		provider:    provider,
		maxChunkLen: maxChunkLen,
		outputDir:   outputDir,
		logger:      logger,
	}
}

// Synthesize splits text on the synthesis bound and renders each chunk
// independently, in order. Unlike translation there is no per-chunk
// fallback: any chunk failure fails the whole stage.
func (s *Synthesizer) Synthesize(ctx context.Context, text, outputName string) (*Result, error) {
	chunks := chunk.Split(text, s.maxChunkLen)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no text to synthesize")
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if len(chunks) == 1 {
		outputFile := filepath.Join(s.outputDir, outputName)
		if err := s.provider.GenerateAudio(ctx, chunks[0], outputFile); err != nil {
			return nil, fmt.Errorf("speech synthesis failed: %w", err)
		}
		return &Result{Paths: []string{outputFile}}, nil
	}

	ext := filepath.Ext(outputName)
	if ext == "" {
		ext = ".mp3"
	}

	paths := make([]string, 0, len(chunks))
	for i, c := range chunks {
		s.logger.Info().
			Int("chunk", i+1).
			Int("total", len(chunks)).
			Msg("Synthesizing chunk")

		chunkFile := filepath.Join(s.outputDir, fmt.Sprintf("chunk_%03d%s", i, ext))
		if err := s.provider.GenerateAudio(ctx, c, chunkFile); err != nil {
			return nil, fmt.Errorf("speech synthesis failed on chunk %d/%d: %w", i+1, len(chunks), err)
		}
		paths = append(paths, chunkFile)
	}

	return &Result{Paths: paths}, nil
}
