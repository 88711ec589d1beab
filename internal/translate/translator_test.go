package translate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// fakeBackend implements Backend with scripted per-call results
type fakeBackend struct {
	name         string
	availableErr error
	failures     int // number of leading calls per chunk that fail
	calls        int
	failedByText map[string]int
	translate    func(req ChunkRequest) (string, error)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{name: "fake", failedByText: make(map[string]int)}
}

func (f *fakeBackend) TranslateChunk(ctx context.Context, req ChunkRequest) (string, error) {
	f.calls++
	if f.translate != nil {
		return f.translate(req)
	}
	if f.failedByText[req.Text] < f.failures {
		f.failedByText[req.Text]++
		return "", errors.New("backend error")
	}
	return "T(" + req.Text + ")", nil
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) IsAvailable() error { return f.availableErr }

func noDelay(int) {}

func testOptions() Options {
	return Options{
		SourceLang:  "en",
		TargetLang:  "ko",
		MaxChunkLen: 500,
		MaxRetries:  3,
		Delay:       noDelay,
	}
}

func TestTranslate_PassthroughWithoutBackend(t *testing.T) {
	translator := New(nil, testOptions(), zerolog.Nop())

	inputs := []string{
		"Hello world.",
		"Hello world. This is a test. Short.",
		"",
	}
	for _, input := range inputs {
		got, err := translator.Translate(context.Background(), input)
		if err != nil {
			t.Fatalf("Translate() unexpected error: %v", err)
		}
		if got != input {
			t.Errorf("Expected passthrough %q, got %q", input, got)
		}
	}
}

func TestTranslate_PassthroughWhenBackendUnavailable(t *testing.T) {
	backend := newFakeBackend()
	backend.availableErr = errors.New("connection refused")
	translator := New(backend, testOptions(), zerolog.Nop())

	input := "Hello world. This is a test."
	got, err := translator.Translate(context.Background(), input)
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("Expected passthrough %q, got %q", input, got)
	}
	if backend.calls != 0 {
		t.Errorf("Expected no backend calls, got %d", backend.calls)
	}
}

func TestTranslate_EmptyInput(t *testing.T) {
	backend := newFakeBackend()
	translator := New(backend, testOptions(), zerolog.Nop())

	got, err := translator.Translate(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty result, got %q", got)
	}
	if backend.calls != 0 {
		t.Errorf("Expected no backend calls for empty input, got %d", backend.calls)
	}
}

func TestTranslate_AllChunksTranslated(t *testing.T) {
	backend := newFakeBackend()
	opts := testOptions()
	opts.MaxChunkLen = 20
	translator := New(backend, opts, zerolog.Nop())

	got, err := translator.Translate(context.Background(), "Hello world. This is a test. Short.")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}

	want := "T(Hello world.) T(This is a test.) T(Short.)"
	if got != want {
		t.Errorf("Translate() = %q, want %q", got, want)
	}
	if backend.calls != 3 {
		t.Errorf("Expected 3 backend calls, got %d", backend.calls)
	}
}

func TestTranslate_AlwaysFailingBackendComposesToPassthrough(t *testing.T) {
	backend := newFakeBackend()
	backend.translate = func(ChunkRequest) (string, error) {
		return "", errors.New("backend down")
	}
	opts := testOptions()
	opts.MaxChunkLen = 20
	translator := New(backend, opts, zerolog.Nop())

	got, err := translator.Translate(context.Background(), "Hello world. This is a test. Short.")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}

	// Each chunk falls back to its source text, so the join reconstructs
	// the chunked input.
	want := "Hello world. This is a test. Short."
	if got != want {
		t.Errorf("Translate() = %q, want %q", got, want)
	}
	if backend.calls != 9 {
		t.Errorf("Expected 3 chunks x 3 retries = 9 calls, got %d", backend.calls)
	}
}

func TestTranslate_SucceedsOnFinalAttempt(t *testing.T) {
	backend := newFakeBackend()
	backend.failures = 2 // fail maxRetries-1 times, then succeed
	translator := New(backend, testOptions(), zerolog.Nop())

	got, err := translator.Translate(context.Background(), "Hello world.")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "T(Hello world.)" {
		t.Errorf("Expected successful translation on final attempt, got %q", got)
	}
	if backend.calls != 3 {
		t.Errorf("Expected 3 calls, got %d", backend.calls)
	}
}

func TestTranslate_FallbackAfterRetryBudget(t *testing.T) {
	backend := newFakeBackend()
	backend.failures = 3 // fail exactly maxRetries times
	translator := New(backend, testOptions(), zerolog.Nop())

	got, err := translator.Translate(context.Background(), "Hello world.")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "Hello world." {
		t.Errorf("Expected source-text fallback, got %q", got)
	}
	if backend.calls != 3 {
		t.Errorf("Expected 3 calls, got %d", backend.calls)
	}
}

func TestTranslate_PartialFailureKeepsOtherChunks(t *testing.T) {
	backend := newFakeBackend()
	backend.translate = func(req ChunkRequest) (string, error) {
		if strings.Contains(req.Text, "test") {
			return "", errors.New("backend error")
		}
		return "T(" + req.Text + ")", nil
	}
	opts := testOptions()
	opts.MaxChunkLen = 20
	translator := New(backend, opts, zerolog.Nop())

	got, err := translator.Translate(context.Background(), "Hello world. This is a test. Short.")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}

	want := "T(Hello world.) This is a test. T(Short.)"
	if got != want {
		t.Errorf("Translate() = %q, want %q", got, want)
	}
}

func TestTranslate_EmptyBackendResultConsumesRetry(t *testing.T) {
	backend := newFakeBackend()
	backend.translate = func(ChunkRequest) (string, error) {
		return "   ", nil
	}
	translator := New(backend, testOptions(), zerolog.Nop())

	got, err := translator.Translate(context.Background(), "Hello world.")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "Hello world." {
		t.Errorf("Expected fallback for blank backend results, got %q", got)
	}
	if backend.calls != 3 {
		t.Errorf("Expected 3 calls, got %d", backend.calls)
	}
}

func TestTranslate_DelayCalledBetweenAttemptsOnly(t *testing.T) {
	backend := newFakeBackend()
	backend.translate = func(ChunkRequest) (string, error) {
		return "", errors.New("backend error")
	}

	var delays []int
	opts := testOptions()
	opts.Delay = func(attempt int) { delays = append(delays, attempt) }
	translator := New(backend, opts, zerolog.Nop())

	if _, err := translator.Translate(context.Background(), "Hello world."); err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}

	// No delay after the final attempt.
	if len(delays) != 2 || delays[0] != 1 || delays[1] != 2 {
		t.Errorf("Expected delays after attempts 1 and 2, got %v", delays)
	}
}

func TestTranslate_InvalidConfiguration(t *testing.T) {
	translator := &Translator{} // bypasses New's defaulting

	_, err := translator.Translate(context.Background(), "Hello world.")
	if err == nil {
		t.Error("Expected configuration error for a zero-value translator")
	}
}

func TestTranslate_ChunkOrderPreserved(t *testing.T) {
	backend := newFakeBackend()
	counter := 0
	backend.translate = func(req ChunkRequest) (string, error) {
		counter++
		return fmt.Sprintf("[%d]", counter), nil
	}
	opts := testOptions()
	opts.MaxChunkLen = 15
	translator := New(backend, opts, zerolog.Nop())

	got, err := translator.Translate(context.Background(), "Alpha one. Bravo two. Charlie three.")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "[1] [2] [3]" {
		t.Errorf("Chunk order not preserved: %q", got)
	}
}

func TestSaveTranslation(t *testing.T) {
	tmpDir := t.TempDir()

	path, err := SaveTranslation(tmpDir, "안녕하세요.")
	if err != nil {
		t.Fatalf("SaveTranslation failed: %v", err)
	}

	if filepath.Base(path) != "translated_text.txt" {
		t.Errorf("Unexpected translation file name: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read translation file: %v", err)
	}
	if string(content) != "안녕하세요." {
		t.Errorf("Unexpected content: %q", string(content))
	}
}

func TestSaveTranslation_OverwritesPreviousRun(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := SaveTranslation(tmpDir, "first run"); err != nil {
		t.Fatal(err)
	}
	path, err := SaveTranslation(tmpDir, "second run")
	if err != nil {
		t.Fatal(err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "second run" {
		t.Errorf("Expected overwritten content, got %q", string(content))
	}
}
