package acquire

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// YtDlpAcquirer downloads the best audio track of a remote media URL and
// decodes it into a waveform file via yt-dlp's ffmpeg postprocessing.
type YtDlpAcquirer struct {
	config *Config
}

// NewYtDlpAcquirer creates a new yt-dlp based acquirer
func NewYtDlpAcquirer(config *Config) *YtDlpAcquirer {
	if config == nil {
		config = DefaultConfig()
	}
	return &YtDlpAcquirer{config: config}
}

// Acquire downloads the source URL's audio into the audio directory
func (a *YtDlpAcquirer) Acquire(ctx context.Context, source string) (string, error) {
	if err := os.MkdirAll(a.config.AudioDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	outputTemplate := filepath.Join(a.config.AudioDir, "temp_audio.%(ext)s")
	args := []string{
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", a.config.Format,
		"--audio-quality", a.config.Quality,
		"--output", outputTemplate,
		source,
	}

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("yt-dlp failed: %w\nOutput: %s", err, string(output))
	}

	audioFile := filepath.Join(a.config.AudioDir, "temp_audio."+a.config.Format)
	if _, err := os.Stat(audioFile); err != nil {
		return "", fmt.Errorf("extracted audio file not found: %w", err)
	}

	return audioFile, nil
}

// Name returns the acquirer name
func (a *YtDlpAcquirer) Name() string {
	return "yt-dlp"
}

// IsAvailable checks if yt-dlp is installed
func (a *YtDlpAcquirer) IsAvailable() error {
	return checkInstalled("yt-dlp")
}
