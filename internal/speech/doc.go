// Package speech renders target-language text into audio files through a
// pluggable text-to-speech provider (OpenAI TTS or a local espeak-ng
// install). Long texts are split on the synthesis length bound and rendered
// chunk by chunk into an ordered set of files.
package speech
