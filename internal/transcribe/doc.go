// Package transcribe provides speech-to-text backends that turn a decoded
// audio file into a transcript, via the OpenAI Whisper API or a local
// whisper-cli binary.
package transcribe
