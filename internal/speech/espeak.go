package speech

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ESpeak provides an interface to the espeak-ng text-to-speech engine
type ESpeak struct {
	voice     string // language voice, e.g. "ko", "en"
	speed     int    // words per minute
	pitch     int    // 0 to 99
	amplitude int    // 0 to 200
}

// NewESpeak creates a new ESpeak instance for the given language voice
func NewESpeak(voice string, speed, pitch, amplitude int) (*ESpeak, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	if voice == "" {
		voice = "en"
	}
	if speed == 0 {
		speed = 150
	}
	if pitch == 0 {
		pitch = 50
	}
	if amplitude == 0 {
		amplitude = 100
	}

	return &ESpeak{
		voice:     voice,
		speed:     speed,
		pitch:     pitch,
		amplitude: amplitude,
	}, nil
}

// GenerateAudio generates a WAV file for the given text
func (e *ESpeak) GenerateAudio(text string, outputFile string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	args := []string{
		"-v", e.voice,
		"-s", fmt.Sprintf("%d", e.speed),
		"-p", fmt.Sprintf("%d", e.pitch),
		"-a", fmt.Sprintf("%d", e.amplitude),
		"-w", outputFile,
		text,
	}

	cmd := exec.Command("espeak-ng", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// GenerateMP3 generates an MP3 file for the given text
func (e *ESpeak) GenerateMP3(text string, outputFile string) error {
	// espeak-ng only writes WAV, so convert afterwards
	tempWAV := strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + "_temp.wav"

	if err := e.GenerateAudio(text, tempWAV); err != nil {
		return err
	}

	if err := ConvertWAVToMP3(tempWAV, outputFile); err != nil {
		os.Remove(tempWAV)
		return err
	}

	return os.Remove(tempWAV)
}

// ConvertWAVToMP3 converts a WAV file to MP3 using ffmpeg
func ConvertWAVToMP3(wavFile, mp3File string) error {
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg is not installed or not in PATH: %w", err)
	}

	cmd := exec.Command("ffmpeg", "-i", wavFile, "-acodec", "mp3", "-y", mp3File)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// checkESpeakInstalled verifies espeak-ng is on the PATH
func checkESpeakInstalled() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}
