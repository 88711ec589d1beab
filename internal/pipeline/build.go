package pipeline

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"codeberg.org/snonux/redub/internal/acquire"
	"codeberg.org/snonux/redub/internal/cli"
	"codeberg.org/snonux/redub/internal/speech"
	"codeberg.org/snonux/redub/internal/transcribe"
	"codeberg.org/snonux/redub/internal/translate"
)

// Build assembles a pipeline from command-line flags and viper config.
func Build(flags *cli.Flags, logger zerolog.Logger) (*Pipeline, error) {
	acquireConfig := &acquire.Config{
		AudioDir: flags.AudioDir,
		Format:   "wav",
		Quality:  "192",
	}
	acquirerFor := func(source string) (acquire.Acquirer, error) {
		return acquire.For(source, acquireConfig)
	}

	transcriber, err := buildTranscriber(flags)
	if err != nil {
		return nil, fmt.Errorf("transcription setup failed: %w", err)
	}

	translator, err := buildTranslator(flags, logger)
	if err != nil {
		return nil, fmt.Errorf("translation setup failed: %w", err)
	}

	synthesizer, err := buildSynthesizer(flags, logger)
	if err != nil {
		return nil, fmt.Errorf("speech setup failed: %w", err)
	}

	options := Options{
		TextDir:    flags.TextDir,
		OutputName: flags.OutputName,
		SourceLang: flags.SourceLang,
		KeepAudio:  flags.KeepAudio,
	}

	return New(acquirerFor, transcriber, translator, synthesizer, options, logger), nil
}

func buildTranscriber(flags *cli.Flags) (transcribe.Backend, error) {
	config := &transcribe.Config{
		Backend:          flags.Transcriber,
		OpenAIKey:        cli.GetOpenAIKey(),
		OpenAIModel:      flags.TranscribeModel,
		WhisperBinary:    flags.WhisperBinary,
		WhisperModelPath: flags.WhisperModel,
	}

	// Use config file values if not overridden by flags
	if config.OpenAIModel == "" && viper.IsSet("transcribe.openai_model") {
		config.OpenAIModel = viper.GetString("transcribe.openai_model")
	}
	if config.WhisperModelPath == "" && viper.IsSet("transcribe.whisper_model") {
		config.WhisperModelPath = viper.GetString("transcribe.whisper_model")
	}

	return transcribe.NewBackend(config)
}

func buildTranslator(flags *cli.Flags, logger zerolog.Logger) (Translator, error) {
	registry := translate.NewRegistry(flags.TranslationProvider)

	ollamaURL := flags.OllamaURL
	if ollamaURL == "" && viper.IsSet("translate.ollama_url") {
		ollamaURL = viper.GetString("translate.ollama_url")
	}
	if err := registry.Register(translate.NewOllamaBackend(ollamaURL, flags.TranslationModel)); err != nil {
		return nil, err
	}

	if key := cli.GetOpenAIKey(); key != "" {
		if err := registry.Register(translate.NewOpenAIBackend(key, flags.TranslationModel)); err != nil {
			return nil, err
		}
	}
	if key := cli.GetGeminiKey(); key != "" {
		if err := registry.Register(translate.NewGeminiBackend(key, flags.TranslationModel)); err != nil {
			return nil, err
		}
	}

	backend, err := registry.Backend(flags.TranslationProvider)
	if err != nil {
		return nil, err
	}
	if backend != nil {
		backend = translate.WithBreaker(backend)
	}

	options := translate.Options{
		SourceLang:  flags.SourceLang,
		TargetLang:  flags.TargetLang,
		MaxChunkLen: flags.TranslationChunkLen,
		MaxRetries:  flags.MaxRetries,
		Delay: func(int) {
			time.Sleep(2 * time.Second)
		},
	}

	return translate.New(backend, options, logger), nil
}

func buildSynthesizer(flags *cli.Flags, logger zerolog.Logger) (Synthesizer, error) {
	config := &speech.Config{
		Provider:          flags.SpeechProvider,
		OutputFormat:      flags.AudioFormat,
		Language:          flags.TargetLang,
		OpenAIKey:         cli.GetOpenAIKey(),
		OpenAIModel:       flags.OpenAITTSModel,
		OpenAIVoice:       flags.OpenAIVoice,
		OpenAISpeed:       flags.OpenAISpeed,
		OpenAIInstruction: flags.OpenAIInstruction,
		ESpeakSpeed:       150,
		ESpeakPitch:       50,
		ESpeakAmplitude:   100,
	}

	// Use config file values if not overridden by flags
	if flags.OpenAITTSModel == "gpt-4o-mini-tts" && viper.IsSet("speech.openai_model") {
		config.OpenAIModel = viper.GetString("speech.openai_model")
	}
	if flags.OpenAIInstruction == "" && viper.IsSet("speech.openai_instruction") {
		config.OpenAIInstruction = viper.GetString("speech.openai_instruction")
	}

	provider, err := speech.NewProvider(config)
	if err != nil {
		return nil, err
	}

	return speech.NewSynthesizer(provider, flags.SpeechChunkLen, flags.OutputDir, logger), nil
}
