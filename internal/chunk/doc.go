// Package chunk splits free-form text into bounded-length segments on
// sentence boundaries. The same splitter feeds both the translation stage
// and the speech synthesis stage, each with its own length bound.
package chunk
