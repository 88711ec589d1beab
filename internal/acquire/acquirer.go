package acquire

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
)

// Acquirer produces a decoded audio file from a source locator.
type Acquirer interface {
	// Acquire downloads or extracts the source's audio track and returns
	// the path of the resulting file.
	Acquire(ctx context.Context, source string) (string, error)

	// Name returns the acquirer name
	Name() string

	// IsAvailable checks if the acquirer's external tooling is installed
	IsAvailable() error
}

// Config holds common configuration for acquirers
type Config struct {
	AudioDir string // Directory for the intermediate audio file
	Format   string // Decoded audio container, "wav" by default
	Quality  string // Postprocessing quality passed to yt-dlp
}

// DefaultConfig returns default acquisition configuration
func DefaultConfig() *Config {
	return &Config{
		AudioDir: "audio",
		Format:   "wav",
		Quality:  "192",
	}
}

// For selects the appropriate acquirer for a source locator: http(s) URLs go
// through yt-dlp, existing local files through ffmpeg extraction.
func For(source string, config *Config) (Acquirer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if isURL(source) {
		return NewYtDlpAcquirer(config), nil
	}
	if _, err := os.Stat(source); err == nil {
		return NewFFmpegAcquirer(config), nil
	}

	return nil, fmt.Errorf("source %q is neither a URL nor an existing file", source)
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// checkInstalled verifies that an external binary is on the PATH
func checkInstalled(binary string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s is not installed or not in PATH: %w", binary, err)
	}
	return nil
}
