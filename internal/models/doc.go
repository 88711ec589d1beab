// Package models provides functionality for listing and categorizing
// available OpenAI models. It helps users discover which transcription,
// text-to-speech and translation models are available with their API key.
package models
