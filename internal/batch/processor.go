package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/redub/internal"
)

// Entry represents one source locator with an optional custom output name
type Entry struct {
	Source string
	Name   string
}

// nameSeparator splits a source from its custom output name. It is
// space-padded so bare URLs with query parameters ("watch?v=abc") are
// never mistaken for the named form.
const nameSeparator = " = "

// ReadSourceFile reads source locators from a file, one per line.
// Supports formats:
// - Source only: "https://youtube.com/watch?v=xyz" (numbered output name)
// - With name: "lecture.mp4 = intro-lecture" (custom output name)
// Blank lines and lines starting with '#' are ignored.
func ReadSourceFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if source, name, found := strings.Cut(line, nameSeparator); found {
			entries = append(entries, Entry{
				Source: strings.TrimSpace(source),
				Name:   strings.TrimSpace(name),
			})
		} else {
			entries = append(entries, Entry{Source: line})
		}
	}

	return entries, nil
}

// Runner runs the dubbing pipeline for one source.
type Runner interface {
	Run(ctx context.Context, source, outputName string) error
}

// Processor runs the pipeline over a batch of sources. Entries are processed
// in order and a failing entry does not stop the batch.
type Processor struct {
	runner      Runner
	defaultName string
}

// NewProcessor creates a new batch processor. The default name is the single
// run output file name, e.g. "dubbed_audio.mp3"; entries without a custom
// name get a numbered variant of it.
func NewProcessor(runner Runner, defaultName string) *Processor {
	if defaultName == "" {
		defaultName = "dubbed_audio.mp3"
	}
	return &Processor{
		runner:      runner,
		defaultName: defaultName,
	}
}

// ProcessAll processes every entry and returns an error if any of them failed
func (p *Processor) ProcessAll(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("batch file contains no sources")
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		name := p.OutputName(entry, i)
		fmt.Printf("\nProcessing %d/%d: %s -> %s\n", i+1, len(entries), entry.Source, name)

		if err := p.runner.Run(ctx, entry.Source, name); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Source, err)
			errorCount++
			// Continue with next source
		} else {
			processedCount++
		}
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total sources: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("================================\n")

	if errorCount > 0 {
		return fmt.Errorf("%d of %d sources failed", errorCount, len(entries))
	}
	return nil
}

// OutputName returns the dubbed audio file name for one entry. Custom names
// are sanitized; unnamed entries get the default name with a counter so
// parallel sources do not overwrite each other.
func (p *Processor) OutputName(entry Entry, index int) string {
	ext := filepath.Ext(p.defaultName)
	if ext == "" {
		ext = ".mp3"
	}

	if entry.Name != "" {
		return internal.SanitizeFilename(entry.Name) + ext
	}

	base := strings.TrimSuffix(p.defaultName, ext)
	return fmt.Sprintf("%s_%03d%s", base, index+1, ext)
}
