package transcribe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// WhisperCLIBackend shells out to a local whisper.cpp command line binary.
type WhisperCLIBackend struct {
	binary    string
	modelPath string
}

// NewWhisperCLIBackend creates a backend running a local whisper-cli binary
func NewWhisperCLIBackend(binary, modelPath string) *WhisperCLIBackend {
	if binary == "" {
		binary = "whisper-cli"
	}
	return &WhisperCLIBackend{
		binary:    binary,
		modelPath: modelPath,
	}
}

// Transcribe runs the local binary and reads the text file it produces
func (b *WhisperCLIBackend) Transcribe(ctx context.Context, audioPath, languageHint string) (Transcript, error) {
	if b.modelPath == "" {
		return Transcript{}, fmt.Errorf("whisper model path not configured")
	}

	outDir, err := os.MkdirTemp("", "redub-whisper-")
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	outPrefix := filepath.Join(outDir, "transcript")
	args := []string{
		"-m", b.modelPath,
		"-f", audioPath,
		"-otxt",
		"-of", outPrefix,
	}
	if languageHint != "" {
		args = append(args, "-l", languageHint)
	}

	cmd := exec.CommandContext(ctx, b.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Transcript{}, fmt.Errorf("%s failed: %w\nOutput: %s", b.binary, err, string(output))
	}

	text, err := os.ReadFile(outPrefix + ".txt")
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to read whisper output: %w", err)
	}

	return Transcript{
		Text:     strings.TrimSpace(string(text)),
		Language: languageHint,
	}, nil
}

// Name returns the backend name
func (b *WhisperCLIBackend) Name() string {
	return "whisper-cli"
}

// IsAvailable checks if the binary and model file are present
func (b *WhisperCLIBackend) IsAvailable() error {
	if _, err := exec.LookPath(b.binary); err != nil {
		return fmt.Errorf("%s is not installed or not in PATH: %w", b.binary, err)
	}
	if b.modelPath == "" {
		return fmt.Errorf("whisper model path not configured")
	}
	if _, err := os.Stat(b.modelPath); err != nil {
		return fmt.Errorf("whisper model not found: %w", err)
	}
	return nil
}
