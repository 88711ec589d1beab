package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/redub/internal/acquire"
	"codeberg.org/snonux/redub/internal/speech"
	"codeberg.org/snonux/redub/internal/testutil"
	"codeberg.org/snonux/redub/internal/transcribe"
)

type fakeAcquirer struct {
	audioPath string
	err       error
}

func (a *fakeAcquirer) Acquire(_ context.Context, _ string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	if err := os.WriteFile(a.audioPath, []byte("RIFF"), 0644); err != nil {
		return "", err
	}
	return a.audioPath, nil
}

func (a *fakeAcquirer) Name() string       { return "fake" }
func (a *fakeAcquirer) IsAvailable() error { return nil }

type fakeTranscriber struct {
	transcript transcribe.Transcript
	err        error
	calls      int
}

func (t *fakeTranscriber) Transcribe(_ context.Context, _, _ string) (transcribe.Transcript, error) {
	t.calls++
	return t.transcript, t.err
}

func (t *fakeTranscriber) Name() string       { return "fake" }
func (t *fakeTranscriber) IsAvailable() error { return nil }

type fakeTranslator struct {
	result string
	err    error
	calls  int
}

func (t *fakeTranslator) Translate(_ context.Context, text string) (string, error) {
	t.calls++
	if t.err != nil {
		return "", t.err
	}
	if t.result != "" {
		return t.result, nil
	}
	return text, nil
}

type fakeSynthesizer struct {
	outputDir string
	err       error
	calls     int
	lastText  string
}

func (s *fakeSynthesizer) Synthesize(_ context.Context, text, outputName string) (*speech.Result, error) {
	s.calls++
	s.lastText = text
	if s.err != nil {
		return nil, s.err
	}
	path := filepath.Join(s.outputDir, outputName)
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		return nil, err
	}
	return &speech.Result{Paths: []string{path}}, nil
}

func newTestPipeline(t *testing.T, opts Options, acq acquire.Acquirer, tr transcribe.Backend, tl Translator, sy Synthesizer) *Pipeline {
	t.Helper()
	acquirerFor := func(string) (acquire.Acquirer, error) {
		if acq == nil {
			return nil, fmt.Errorf("no acquirer for source")
		}
		return acq, nil
	}
	return New(acquirerFor, tr, tl, sy, opts, zerolog.Nop())
}

func TestRunSuccess(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "temp_audio.wav")

	transcriber := &fakeTranscriber{
		transcript: transcribe.Transcript{Text: "Hello there.", Language: "en"},
	}
	translator := &fakeTranslator{result: "안녕하세요."}
	synthesizer := &fakeSynthesizer{outputDir: dir}

	p := newTestPipeline(t, Options{TextDir: filepath.Join(dir, "text"), OutputName: "dubbed_audio.mp3"},
		&fakeAcquirer{audioPath: audioPath}, transcriber, translator, synthesizer)

	outcome, err := p.Run(context.Background(), "input.mp4")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !outcome.Success {
		t.Error("expected successful outcome")
	}
	if p.Stage() != StageDone {
		t.Errorf("Stage() = %q, want %q", p.Stage(), StageDone)
	}

	if len(outcome.OutputPaths) != 1 {
		t.Fatalf("expected 1 output path, got %d", len(outcome.OutputPaths))
	}
	testutil.AssertFileExists(t, outcome.OutputPaths[0])

	// Side artifacts must hold the stage outputs.
	testutil.AssertFileContent(t, outcome.TranscriptPath, []byte("Hello there."))
	testutil.AssertFileContent(t, outcome.TranslationPath, []byte("안녕하세요."))
	if synthesizer.lastText != "안녕하세요." {
		t.Errorf("synthesizer received %q, want translated text", synthesizer.lastText)
	}

	// Intermediate audio is removed after a successful run.
	testutil.AssertFileNotExists(t, audioPath)
}

func TestRunKeepAudio(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "temp_audio.wav")

	p := newTestPipeline(t, Options{TextDir: filepath.Join(dir, "text"), KeepAudio: true},
		&fakeAcquirer{audioPath: audioPath},
		&fakeTranscriber{transcript: transcribe.Transcript{Text: "Hello.", Language: "en"}},
		&fakeTranslator{},
		&fakeSynthesizer{outputDir: dir})

	if _, err := p.Run(context.Background(), "input.mp4"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	testutil.AssertFileExists(t, audioPath)
}

func TestRunAcquisitionFailure(t *testing.T) {
	dir := t.TempDir()
	transcriber := &fakeTranscriber{}
	translator := &fakeTranslator{}
	synthesizer := &fakeSynthesizer{outputDir: dir}

	p := newTestPipeline(t, Options{TextDir: filepath.Join(dir, "text")},
		&fakeAcquirer{err: fmt.Errorf("download failed")}, transcriber, translator, synthesizer)

	outcome, err := p.Run(context.Background(), "https://example.com/watch?v=x")
	if err == nil {
		t.Fatal("expected error")
	}
	if outcome.Success {
		t.Error("outcome should not be successful")
	}
	if outcome.FailedStage != StageAcquiring {
		t.Errorf("FailedStage = %q, want %q", outcome.FailedStage, StageAcquiring)
	}
	if p.Stage() != StageFailed {
		t.Errorf("Stage() = %q, want %q", p.Stage(), StageFailed)
	}
	if transcriber.calls != 0 || translator.calls != 0 || synthesizer.calls != 0 {
		t.Error("later stages must not run after acquisition fails")
	}
}

func TestRunEmptyTranscriptStopsRun(t *testing.T) {
	dir := t.TempDir()
	translator := &fakeTranslator{}
	synthesizer := &fakeSynthesizer{outputDir: dir}

	p := newTestPipeline(t, Options{TextDir: filepath.Join(dir, "text")},
		&fakeAcquirer{audioPath: filepath.Join(dir, "temp_audio.wav")},
		&fakeTranscriber{transcript: transcribe.Transcript{Text: "   \n "}},
		translator, synthesizer)

	outcome, err := p.Run(context.Background(), "input.mp4")
	if err == nil {
		t.Fatal("expected error for empty transcription")
	}
	if outcome.FailedStage != StageTranscribing {
		t.Errorf("FailedStage = %q, want %q", outcome.FailedStage, StageTranscribing)
	}
	if translator.calls != 0 {
		t.Error("translator must not run on an empty transcript")
	}
	if synthesizer.calls != 0 {
		t.Error("synthesizer must not run on an empty transcript")
	}
}

func TestRunSynthesisFailureLeavesAudio(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "temp_audio.wav")

	p := newTestPipeline(t, Options{TextDir: filepath.Join(dir, "text")},
		&fakeAcquirer{audioPath: audioPath},
		&fakeTranscriber{transcript: transcribe.Transcript{Text: "Hello.", Language: "en"}},
		&fakeTranslator{},
		&fakeSynthesizer{outputDir: dir, err: fmt.Errorf("tts unavailable")})

	outcome, err := p.Run(context.Background(), "input.mp4")
	if err == nil {
		t.Fatal("expected error")
	}
	if outcome.FailedStage != StageSynthesizing {
		t.Errorf("FailedStage = %q, want %q", outcome.FailedStage, StageSynthesizing)
	}

	// The intermediate audio stays around for inspection after a failure.
	testutil.AssertFileExists(t, audioPath)
}

func TestRunDetectsLanguageWhenBackendOmitsIt(t *testing.T) {
	dir := t.TempDir()

	p := newTestPipeline(t, Options{TextDir: filepath.Join(dir, "text")},
		&fakeAcquirer{audioPath: filepath.Join(dir, "temp_audio.wav")},
		&fakeTranscriber{transcript: transcribe.Transcript{
			Text: "The weather forecast for tomorrow promises sunshine across the entire country.",
		}},
		&fakeTranslator{},
		&fakeSynthesizer{outputDir: dir})

	outcome, err := p.Run(context.Background(), "input.mp4")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	testutil.AssertFileExists(t, outcome.TranscriptPath)
}
