package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/redub/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "redub [source]",
		Short: "Spoken-media dubbing pipeline",
		Long: `redub turns spoken media into a dubbed audio track in another language.

It downloads or extracts the source audio, transcribes the speech,
translates the transcript chunk by chunk and synthesizes the translation
as new speech.

Examples:
  redub https://youtube.com/watch?v=xyz        # Dub a video URL into Korean
  redub lecture.mp4 --target-lang de           # Dub a local file into German
  redub --batch sources.txt                    # Process multiple sources from file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.redub.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory for the dubbed audio")
	cmd.Flags().StringVar(&flags.OutputName, "output-name", flags.OutputName, "File name of the dubbed audio")
	cmd.Flags().StringVar(&flags.AudioDir, "audio-dir", flags.AudioDir, "Directory for the intermediate source audio")
	cmd.Flags().StringVar(&flags.TextDir, "text-dir", flags.TextDir, "Directory for transcript and translation artifacts")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process sources from file (one per line)")
	cmd.Flags().BoolVar(&flags.KeepAudio, "keep-audio", false, "Keep the intermediate source audio after a successful run")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: trace, debug, info, warn, error")

	// Language flags
	cmd.Flags().StringVar(&flags.SourceLang, "source-lang", flags.SourceLang, "Source language as ISO 639-1 code")
	cmd.Flags().StringVar(&flags.TargetLang, "target-lang", flags.TargetLang, "Target language as ISO 639-1 code")

	// Transcription flags
	cmd.Flags().StringVar(&flags.Transcriber, "transcriber", flags.Transcriber, "Transcription backend: openai or whisper-cli")
	cmd.Flags().StringVar(&flags.TranscribeModel, "transcribe-model", "", "OpenAI transcription model (default whisper-1)")
	cmd.Flags().StringVar(&flags.WhisperBinary, "whisper-binary", flags.WhisperBinary, "Path of the whisper-cli binary")
	cmd.Flags().StringVar(&flags.WhisperModel, "whisper-model", "", "Path of the ggml model file for whisper-cli")

	// Translation flags
	cmd.Flags().StringVar(&flags.TranslationProvider, "translator", flags.TranslationProvider, "Translation backend: ollama, openai, gemini or none")
	cmd.Flags().StringVar(&flags.TranslationModel, "translation-model", "", "Model used by the translation backend")
	cmd.Flags().IntVar(&flags.TranslationChunkLen, "translation-chunk-len", flags.TranslationChunkLen, "Maximum characters per translation chunk")
	cmd.Flags().IntVar(&flags.MaxRetries, "max-retries", flags.MaxRetries, "Attempts per chunk before falling back to the source text")
	cmd.Flags().StringVar(&flags.OllamaURL, "ollama-url", "", "Base URL of the Ollama server (default http://localhost:11434)")

	// Speech flags
	cmd.Flags().StringVar(&flags.SpeechProvider, "speech-provider", flags.SpeechProvider, "Speech synthesis provider: openai or espeak")
	cmd.Flags().IntVar(&flags.SpeechChunkLen, "speech-chunk-len", flags.SpeechChunkLen, "Maximum characters per synthesis chunk")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (mp3 or wav)")
	cmd.Flags().StringVar(&flags.OpenAITTSModel, "openai-model", flags.OpenAITTSModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, coral, echo, fable, onyx, nova, sage, shimmer")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts model (e.g. 'speak slowly and clearly')")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.name", cmd.Flags().Lookup("output-name"))
	viper.BindPFlag("output.audio_dir", cmd.Flags().Lookup("audio-dir"))
	viper.BindPFlag("output.text_dir", cmd.Flags().Lookup("text-dir"))
	viper.BindPFlag("language.source", cmd.Flags().Lookup("source-lang"))
	viper.BindPFlag("language.target", cmd.Flags().Lookup("target-lang"))
	viper.BindPFlag("transcribe.backend", cmd.Flags().Lookup("transcriber"))
	viper.BindPFlag("transcribe.openai_model", cmd.Flags().Lookup("transcribe-model"))
	viper.BindPFlag("transcribe.whisper_binary", cmd.Flags().Lookup("whisper-binary"))
	viper.BindPFlag("transcribe.whisper_model", cmd.Flags().Lookup("whisper-model"))
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("translator"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("translation-model"))
	viper.BindPFlag("translate.chunk_len", cmd.Flags().Lookup("translation-chunk-len"))
	viper.BindPFlag("translate.max_retries", cmd.Flags().Lookup("max-retries"))
	viper.BindPFlag("translate.ollama_url", cmd.Flags().Lookup("ollama-url"))
	viper.BindPFlag("speech.provider", cmd.Flags().Lookup("speech-provider"))
	viper.BindPFlag("speech.chunk_len", cmd.Flags().Lookup("speech-chunk-len"))
	viper.BindPFlag("speech.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("speech.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("speech.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("speech.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("speech.openai_instruction", cmd.Flags().Lookup("openai-instruction"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".redub" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".redub")
	}

	// Environment variables
	viper.SetEnvPrefix("REDUB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini_key")
}
