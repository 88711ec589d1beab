package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists all available OpenAI models categorized by type
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .redub.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}

	transcriptionModels, ttsModels, chatModels := categorize(ids)

	fmt.Println("Available OpenAI Models:")

	fmt.Println("\nTranscription Models:")
	if len(transcriptionModels) == 0 {
		fmt.Println("  No transcription models found")
	} else {
		for _, model := range transcriptionModels {
			fmt.Printf("  %s\n", model)
		}
	}

	fmt.Println("\nText-to-Speech (TTS) Models:")
	if len(ttsModels) == 0 {
		fmt.Println("  No TTS models found")
	} else {
		for _, model := range ttsModels {
			fmt.Printf("  %s\n", model)
		}
	}

	fmt.Println("\nChat/Translation Models:")
	if len(chatModels) > 10 {
		// Show only relevant models
		relevantModels := []string{}
		for _, model := range chatModels {
			if strings.Contains(model, "gpt-4") || strings.Contains(model, "gpt-3.5") {
				relevantModels = append(relevantModels, model)
			}
		}
		for _, model := range relevantModels {
			fmt.Printf("  %s\n", model)
		}
		fmt.Printf("  ... and %d more models\n", len(chatModels)-len(relevantModels))
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}

// categorize splits model IDs into the three categories the pipeline uses.
// Models that fit none of them are dropped.
func categorize(ids []string) (transcription, tts, chat []string) {
	for _, id := range ids {
		switch {
		case strings.Contains(id, "whisper") || strings.Contains(id, "transcribe"):
			transcription = append(transcription, id)
		case strings.Contains(id, "tts") || strings.Contains(id, "audio"):
			tts = append(tts, id)
		case strings.Contains(id, "gpt") || strings.Contains(id, "chat"):
			chat = append(chat, id)
		}
	}

	sort.Strings(transcription)
	sort.Strings(tts)
	sort.Strings(chat)
	return transcription, tts, chat
}
