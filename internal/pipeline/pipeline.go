package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/redub/internal/acquire"
	"codeberg.org/snonux/redub/internal/langdetect"
	"codeberg.org/snonux/redub/internal/speech"
	"codeberg.org/snonux/redub/internal/transcribe"
	"codeberg.org/snonux/redub/internal/translate"
)

// Stage identifies where a run currently is, or where it stopped.
type Stage string

const (
	StageIdle         Stage = "idle"
	StageAcquiring    Stage = "acquiring"
	StageTranscribing Stage = "transcribing"
	StageTranslating  Stage = "translating"
	StageSynthesizing Stage = "synthesizing"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)

// Translator converts transcript text into the target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Synthesizer renders text as one or more audio files.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, outputName string) (*speech.Result, error)
}

// AcquirerFunc resolves the acquirer for a source locator. The indirection
// lets tests substitute a fake without touching yt-dlp or ffmpeg.
type AcquirerFunc func(source string) (acquire.Acquirer, error)

// Options holds the run-level settings that are not owned by a single stage.
type Options struct {
	TextDir    string // Directory for transcript and translation artifacts
	OutputName string // File name of the dubbed audio, e.g. "dubbed_audio.mp3"
	SourceLang string // ISO 639-1 hint passed to transcription, may be empty
	KeepAudio  bool   // Keep the intermediate source audio after a successful run
}

// Outcome reports where a run ended up and which files it produced.
type Outcome struct {
	Success         bool
	FailedStage     Stage // Set only when Success is false
	OutputPaths     []string
	TranscriptPath  string
	TranslationPath string
}

// Pipeline wires the four stages together. Construct it with New and run it
// once per source; Stage reports progress while Run is in flight.
type Pipeline struct {
	acquirerFor AcquirerFunc
	transcriber transcribe.Backend
	translator  Translator
	synthesizer Synthesizer
	options     Options
	logger      zerolog.Logger
	stage       Stage
}

// New creates a pipeline from its stage implementations.
func New(acquirerFor AcquirerFunc, transcriber transcribe.Backend, translator Translator, synthesizer Synthesizer, options Options, logger zerolog.Logger) *Pipeline {
	if options.TextDir == "" {
		options.TextDir = "text"
	}
	if options.OutputName == "" {
		options.OutputName = "dubbed_audio.mp3"
	}
	return &Pipeline{
		acquirerFor: acquirerFor,
		transcriber: transcriber,
		translator:  translator,
		synthesizer: synthesizer,
		options:     options,
		logger:      logger,
		stage:       StageIdle,
	}
}

// Stage returns the stage the pipeline is currently in.
func (p *Pipeline) Stage() Stage {
	return p.stage
}

// Run executes all stages for one source. A stage error stops the run
// immediately; later stages are never entered with bad input. The returned
// Outcome is valid in both the success and the failure case.
func (p *Pipeline) Run(ctx context.Context, source string) (*Outcome, error) {
	outcome := &Outcome{}

	// Stage 1: acquire the source audio.
	p.stage = StageAcquiring
	p.logger.Info().Str("source", source).Msg("Acquiring source audio")

	acquirer, err := p.acquirerFor(source)
	if err != nil {
		return p.fail(outcome, StageAcquiring, err)
	}
	audioPath, err := acquirer.Acquire(ctx, source)
	if err != nil {
		return p.fail(outcome, StageAcquiring, fmt.Errorf("%s: %w", acquirer.Name(), err))
	}
	p.logger.Info().Str("audio", audioPath).Msg("Source audio ready")

	// Stage 2: transcribe.
	p.stage = StageTranscribing
	p.logger.Info().Str("backend", p.transcriber.Name()).Msg("Transcribing audio")

	transcript, err := p.transcriber.Transcribe(ctx, audioPath, p.options.SourceLang)
	if err != nil {
		return p.fail(outcome, StageTranscribing, err)
	}
	if strings.TrimSpace(transcript.Text) == "" {
		return p.fail(outcome, StageTranscribing, fmt.Errorf("transcription produced no text"))
	}
	if transcript.Language == "" {
		transcript.Language = langdetect.DetectISO6391(transcript.Text)
	}

	outcome.TranscriptPath, err = transcribe.SaveTranscript(p.options.TextDir, transcript)
	if err != nil {
		return p.fail(outcome, StageTranscribing, err)
	}
	p.logger.Info().
		Str("language", transcript.Language).
		Int("chars", len(transcript.Text)).
		Str("file", outcome.TranscriptPath).
		Msg("Transcription complete")

	// Stage 3: translate.
	p.stage = StageTranslating

	translated, err := p.translator.Translate(ctx, transcript.Text)
	if err != nil {
		return p.fail(outcome, StageTranslating, err)
	}
	if strings.TrimSpace(translated) == "" {
		return p.fail(outcome, StageTranslating, fmt.Errorf("translation produced no text"))
	}

	outcome.TranslationPath, err = translate.SaveTranslation(p.options.TextDir, translated)
	if err != nil {
		return p.fail(outcome, StageTranslating, err)
	}
	p.logger.Info().
		Int("chars", len(translated)).
		Str("file", outcome.TranslationPath).
		Msg("Translation complete")

	// Stage 4: synthesize speech.
	p.stage = StageSynthesizing

	result, err := p.synthesizer.Synthesize(ctx, translated, p.options.OutputName)
	if err != nil {
		return p.fail(outcome, StageSynthesizing, err)
	}
	outcome.OutputPaths = result.Paths

	p.stage = StageDone
	outcome.Success = true
	p.cleanup(audioPath)

	return outcome, nil
}

// fail records the failing stage on both the pipeline and the outcome. The
// intermediate audio is left in place so a failed run can be inspected.
func (p *Pipeline) fail(outcome *Outcome, stage Stage, err error) (*Outcome, error) {
	p.stage = StageFailed
	outcome.FailedStage = stage
	p.logger.Error().Err(err).Str("stage", string(stage)).Msg("Pipeline stage failed")
	return outcome, fmt.Errorf("%s: %w", stage, err)
}

// cleanup removes the intermediate source audio after a successful run,
// unless configured to keep it. Removal is best effort.
func (p *Pipeline) cleanup(audioPath string) {
	if p.options.KeepAudio || audioPath == "" {
		return
	}
	if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
		p.logger.Warn().Err(err).Str("file", audioPath).Msg("Failed to remove intermediate audio")
	}
}
