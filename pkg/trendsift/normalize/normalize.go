// Package normalize turns raw article text into an ordered lemma sequence.
// The cleanup drops emails, links and everything outside the Cyrillic
// script, then keeps only content-bearing lemmas (NOUN, ADJ, VERB, ADV,
// PROPN) from the linguistic analyzer.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/trendsift/pkg/trendsift/lingua"
)

var (
	emailRe = regexp.MustCompile(`\S*@\S*\s?`)
	urlRe   = regexp.MustCompile(`http\S+`)
	wwwRe   = regexp.MustCompile(`www\.\S+`)
	// Any run outside the Cyrillic script collapses to a single space.
	nonCyrillicRe = regexp.MustCompile(`[^а-яА-ЯёЁ]+`)
)

// Normalizer cleans raw text and filters analyzer output down to content
// lemmas.
type Normalizer struct {
	analyzer lingua.Analyzer
}

// New creates a normalizer over the given analyzer.
func New(analyzer lingua.Analyzer) *Normalizer {
	return &Normalizer{analyzer: analyzer}
}

// Lemmas returns the ordered content-lemma sequence for a raw article.
// Text that cleans down to nothing yields an empty sequence, not an error.
func (n *Normalizer) Lemmas(text string) []string {
	cleaned := Clean(text)
	if cleaned == "" {
		return nil
	}

	var lemmas []string
	for _, tok := range n.analyzer.Analyze(cleaned) {
		if tok.Lemma == "" {
			continue
		}
		if _, ok := lingua.Content[tok.POS]; !ok {
			continue
		}
		lemmas = append(lemmas, strings.ToLower(tok.Lemma))
	}
	return lemmas
}

// Clean strips markup, emails, links and non-Cyrillic characters.
func Clean(text string) string {
	text = StripHTML(text)
	text = emailRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = wwwRe.ReplaceAllString(text, "")
	text = nonCyrillicRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripHTML extracts plain text from markup. Plain text without tags passes
// through unchanged.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
