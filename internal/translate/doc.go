// Package translate converts source-language text into the target language
// chunk by chunk, over a pluggable chat-completion backend (OpenAI, Gemini
// or a local Ollama server). Chunks that exhaust their retry budget fall
// back to their original source text, and a missing or unavailable backend
// degrades the whole translation to a passthrough of the input.
package translate
