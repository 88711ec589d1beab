package acquire

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FFmpegAcquirer extracts the audio track of a local media file into a mono
// 16kHz waveform suitable for speech recognition.
type FFmpegAcquirer struct {
	config *Config
}

// NewFFmpegAcquirer creates a new ffmpeg based acquirer for local files
func NewFFmpegAcquirer(config *Config) *FFmpegAcquirer {
	if config == nil {
		config = DefaultConfig()
	}
	return &FFmpegAcquirer{config: config}
}

// Acquire extracts the audio track of a local media file
func (a *FFmpegAcquirer) Acquire(ctx context.Context, source string) (string, error) {
	if err := os.MkdirAll(a.config.AudioDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	audioFile := filepath.Join(a.config.AudioDir, base+"_audio."+a.config.Format)

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", "-i", source,
		"-ac", "1", "-ar", "16000",
		"-f", a.config.Format,
		audioFile,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg failed: %w\nOutput: %s", err, string(output))
	}

	return audioFile, nil
}

// Name returns the acquirer name
func (a *FFmpegAcquirer) Name() string {
	return "ffmpeg"
}

// IsAvailable checks if ffmpeg is installed
func (a *FFmpegAcquirer) IsAvailable() error {
	return checkInstalled("ffmpeg")
}
