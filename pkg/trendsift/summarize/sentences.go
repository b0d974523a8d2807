package summarize

import (
	"strings"
	"unicode"
)

// sentence terminators; ellipses and stacked punctuation collapse into one
// boundary.
func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitSentences splits raw article text into trimmed sentences. The
// terminator stays attached to its sentence; empty fragments are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if !isTerminator(runes[i]) {
			continue
		}
		// Swallow the rest of a terminator run ("..", "?!").
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// words lowercases and splits a sentence on non-letter runes.
func words(sentence string) []string {
	return strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
