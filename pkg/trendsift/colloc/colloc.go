// Package colloc detects statistically significant multi-word expressions
// over a batch of lemma sequences and rewrites the sequences with detected
// collocations merged into single tokens.
//
// The model has an explicit fit/apply lifecycle: Fit learns corpus-level
// co-occurrence counts once, Apply is a read-only rewrite. Callers may cache
// a fitted model across batches.
package colloc

import "strings"

// Delimiter joins the parts of a merged collocation token.
const Delimiter = "_"

// Default fitting parameters.
const (
	DefaultMinCount  = 5
	DefaultThreshold = 10.0
)

// Config controls collocation detection sensitivity.
type Config struct {
	// MinCount is the minimum bigram frequency considered at all.
	MinCount int
	// Threshold is the minimum score for a bigram to merge. Higher means
	// fewer, stronger collocations.
	Threshold float64
}

// DefaultConfig returns the standard fitting parameters.
func DefaultConfig() Config {
	return Config{MinCount: DefaultMinCount, Threshold: DefaultThreshold}
}

type pair struct {
	a, b string
}

// Model holds corpus-level unigram and adjacent-bigram counts fitted over
// one batch. Read-only after Fit.
type Model struct {
	unigram   map[string]int
	bigram    map[pair]int
	vocab     int
	minCount  int
	threshold float64
}

// Fit learns co-occurrence statistics from a batch of token sequences.
// Statistical significance needs cross-document frequency, so fitting
// always takes the whole batch, never a single article.
func Fit(batch [][]string, cfg Config) *Model {
	if cfg.MinCount <= 0 {
		cfg.MinCount = DefaultMinCount
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}

	m := &Model{
		unigram:   make(map[string]int),
		bigram:    make(map[pair]int),
		minCount:  cfg.MinCount,
		threshold: cfg.Threshold,
	}

	for _, seq := range batch {
		for i, tok := range seq {
			if tok == "" {
				continue
			}
			m.unigram[tok]++
			if i+1 < len(seq) && seq[i+1] != "" {
				m.bigram[pair{tok, seq[i+1]}]++
			}
		}
	}
	m.vocab = len(m.unigram)

	return m
}

// Apply rewrites one sequence, merging adjacent pairs that score at or
// above the threshold. A merged token never chains into the next pair in
// the same pass, and merged tokens are unknown to the model, so applying
// the same fitted model to its own output is a no-op.
func (m *Model) Apply(seq []string) []string {
	if len(seq) == 0 {
		return nil
	}

	out := make([]string, 0, len(seq))
	for i := 0; i < len(seq); i++ {
		if i+1 < len(seq) && m.score(seq[i], seq[i+1]) >= m.threshold {
			out = append(out, seq[i]+Delimiter+seq[i+1])
			i++
			continue
		}
		out = append(out, seq[i])
	}
	return out
}

// score is the Phrases-style significance score:
//
//	(count(ab) - minCount) * vocab / (count(a) * count(b))
//
// Pairs below minCount score negative and never merge.
func (m *Model) score(a, b string) float64 {
	nAB := m.bigram[pair{a, b}]
	if nAB < m.minCount {
		return -1
	}
	nA := m.unigram[a]
	nB := m.unigram[b]
	if nA == 0 || nB == 0 {
		return -1
	}
	return float64(nAB-m.minCount) * float64(m.vocab) / (float64(nA) * float64(nB))
}

// FormCollocations does the standard two-pass rewrite: a bigram model fit
// on the raw batch, then a second model fit on the bigram output so that
// three-word expressions surface as (pair + word) merges.
func FormCollocations(batch [][]string, cfg Config) [][]string {
	bigrams := Fit(batch, cfg)

	first := make([][]string, len(batch))
	for i, seq := range batch {
		first[i] = bigrams.Apply(seq)
	}

	trigrams := Fit(first, cfg)

	out := make([][]string, len(first))
	for i, seq := range first {
		out[i] = trigrams.Apply(seq)
	}
	return out
}

// Parts splits a merged collocation token back into its words.
func Parts(token string) []string {
	return strings.Split(token, Delimiter)
}
