// Package lingua defines the linguistic analysis capability consumed by the
// pipeline: per-token lemmatization and part-of-speech tagging. The real
// morphology engine is opaque to the rest of the system; components depend
// only on the Analyzer interface.
package lingua

// POS is a coarse part-of-speech tag.
type POS string

// Coarse POS tags. Content holds the tags the normalizer keeps.
const (
	Noun       POS = "NOUN"
	Adjective  POS = "ADJ"
	Verb       POS = "VERB"
	Adverb     POS = "ADV"
	ProperNoun POS = "PROPN"
	Other      POS = "X"
)

// Content is the fixed set of content-bearing tags.
var Content = map[POS]struct{}{
	Noun:       {},
	Adjective:  {},
	Verb:       {},
	Adverb:     {},
	ProperNoun: {},
}

// Token is one analyzed token: its dictionary form and its tag.
type Token struct {
	Lemma string
	POS   POS
}

// Analyzer produces lemma+POS tokens for a text. Implementations must be
// safe for concurrent use; the pipeline calls Analyze from multiple
// goroutines during deduplication fan-out.
type Analyzer interface {
	Analyze(text string) []Token
}
