package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Transcript is the recognized text of an audio file, tagged with the
// language it was recognized in.
type Transcript struct {
	Text     string
	Language string // ISO 639-1, may be empty if the backend did not report one
}

// Backend is a pluggable speech-to-text backend.
type Backend interface {
	// Transcribe recognizes the speech in the audio file. The language hint
	// is an ISO 639-1 code and may be empty for auto-detection.
	Transcribe(ctx context.Context, audioPath, languageHint string) (Transcript, error)

	// Name returns the backend name
	Name() string

	// IsAvailable checks if the backend is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for transcription backends
type Config struct {
	Backend string // Backend name: "openai" or "whisper-cli"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // "whisper-1" by default

	// whisper-cli specific settings
	WhisperBinary    string // path of the whisper-cli binary, "whisper-cli" by default
	WhisperModelPath string // path of the ggml model file
}

// NewBackend creates the appropriate transcription backend based on configuration
func NewBackend(config *Config) (Backend, error) {
	if config == nil {
		return nil, fmt.Errorf("transcription configuration is required")
	}

	switch config.Backend {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIBackend(config.OpenAIKey, config.OpenAIModel), nil

	case "whisper-cli":
		return NewWhisperCLIBackend(config.WhisperBinary, config.WhisperModelPath), nil

	default:
		return nil, fmt.Errorf("unknown transcription backend: %s", config.Backend)
	}
}

// SaveTranscript persists the recognized text as a plain-text side artifact,
// overwritten on each run.
func SaveTranscript(textDir string, transcript Transcript) (string, error) {
	if err := os.MkdirAll(textDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create text directory: %w", err)
	}

	outputFile := filepath.Join(textDir, "transcribed_text.txt")
	if err := os.WriteFile(outputFile, []byte(transcript.Text), 0644); err != nil {
		return "", fmt.Errorf("failed to write transcript file: %w", err)
	}

	return outputFile, nil
}
