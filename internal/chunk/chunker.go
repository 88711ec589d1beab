package chunk

import "strings"

// delimiter separates sentences after normalization.
const delimiter = ". "

// Split breaks text into an ordered sequence of segments whose lengths stay
// under maxLength. Embedded newlines are collapsed to spaces, the text is
// split on sentence boundaries, and sentences are greedily accumulated into
// segments. A single sentence longer than maxLength is never split further;
// it becomes an oversized segment on its own. Blank input yields no segments.
//
// Split is pure and deterministic: identical input and bound always produce
// an identical segment sequence.
func Split(text string, maxLength int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	normalized := strings.ReplaceAll(text, "\n", " ")
	sentences := strings.Split(normalized, delimiter)

	var chunks []string
	var current string

	for _, sentence := range sentences {
		sentence = strings.TrimSuffix(sentence, ".")
		if len(current)+len(sentence) < maxLength {
			current += sentence + delimiter
			continue
		}
		if current != "" {
			chunks = append(chunks, strings.TrimSpace(current))
		}
		current = sentence + delimiter
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}
