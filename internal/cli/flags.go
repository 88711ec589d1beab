package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	OutputName string
	AudioDir   string
	TextDir    string
	BatchFile  string
	KeepAudio  bool
	ListModels bool
	LogLevel   string

	// Language flags
	SourceLang string
	TargetLang string

	// Transcription flags
	Transcriber     string
	WhisperBinary   string
	WhisperModel    string
	TranscribeModel string

	// Translation flags
	TranslationProvider string
	TranslationModel    string
	TranslationChunkLen int
	MaxRetries          int
	OllamaURL           string

	// Speech flags
	SpeechProvider    string
	SpeechChunkLen    int
	AudioFormat       string
	OpenAITTSModel    string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir:           "output",
		OutputName:          "dubbed_audio.mp3",
		AudioDir:            "audio",
		TextDir:             "text",
		LogLevel:            "info",
		SourceLang:          "en",
		TargetLang:          "ko",
		Transcriber:         "openai",
		WhisperBinary:       "whisper-cli",
		TranslationProvider: "ollama",
		TranslationChunkLen: 500,
		MaxRetries:          3,
		SpeechProvider:      "openai",
		SpeechChunkLen:      500,
		AudioFormat:         "mp3",
		OpenAITTSModel:      "gpt-4o-mini-tts",
		OpenAIVoice:         "alloy",
		OpenAISpeed:         1.0,
	}
}
