package lingua

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
)

// Entry maps one surface form to its lemma and tag.
type Entry struct {
	Lemma string `yaml:"lemma"`
	POS   POS    `yaml:"pos"`
}

// Dictionary is a deterministic Analyzer backed by a lookup table.
// Unknown words fall back to their lowercased surface form tagged as NOUN,
// which keeps open-vocabulary terms (names, neologisms) in the pipeline
// instead of silently dropping them.
type Dictionary struct {
	entries map[string]Entry
}

// NewDictionary builds a dictionary analyzer from surface→entry mappings.
// Keys are matched case-insensitively.
func NewDictionary(entries map[string]Entry) *Dictionary {
	lowered := make(map[string]Entry, len(entries))
	for surface, e := range entries {
		if e.Lemma == "" {
			e.Lemma = strings.ToLower(surface)
		}
		if e.POS == "" {
			e.POS = Noun
		}
		lowered[strings.ToLower(surface)] = e
	}
	return &Dictionary{entries: lowered}
}

// LoadDictionary reads a lemma table from a YAML file.
// Format:
//
//	воды: {lemma: вода, pos: NOUN}
//	горячий: {lemma: горячий, pos: ADJ}
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}

	var entries map[string]Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: lemma dictionary %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	return NewDictionary(entries), nil
}

// Analyze splits text on non-letter runes and looks each word up in the
// table. Words absent from the table keep their lowercased surface form.
func (d *Dictionary) Analyze(text string) []Token {
	var tokens []Token
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := strings.ToLower(current.String())
		current.Reset()
		if e, ok := d.entries[word]; ok {
			tokens = append(tokens, Token{Lemma: e.Lemma, POS: e.POS})
			return
		}
		tokens = append(tokens, Token{Lemma: word, POS: Noun})
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
