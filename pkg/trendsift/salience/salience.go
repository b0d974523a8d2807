// Package salience picks the most important terms of a single tokenized
// article by frequency–inverse-frequency weighting. The article's token
// sequence acts as its own pseudo-corpus: each token position counts as one
// tiny document when computing inverse frequency.
package salience

import (
	"math"
	"sort"
)

// DefaultTopN is the number of terms returned when the caller does not ask
// for a specific count.
const DefaultTopN = 10

// TermScore is one scored distinct term.
type TermScore struct {
	Term  string
	Score float64
}

// Scores returns the tf-idf score per distinct term, sorted by score
// descending with lexicographic order breaking ties.
//
// tf = count/N over the pseudo-corpus, idf = ln((1+N)/(1+count)) + 1
// (smoothed so single-occurrence terms never hit zero).
func Scores(tokens []string) []TermScore {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	n := float64(len(tokens))
	scored := make([]TermScore, 0, len(order))
	for _, term := range order {
		c := float64(counts[term])
		tf := c / n
		idf := math.Log((1+n)/(1+c)) + 1
		scored = append(scored, TermScore{Term: term, Score: tf * idf})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Term < scored[j].Term
	})
	return scored
}

// TopTerms returns the n highest-scoring distinct terms of the article.
// Articles with fewer than n distinct terms return all of them.
func TopTerms(tokens []string, n int) []string {
	if n <= 0 {
		n = DefaultTopN
	}

	scored := Scores(tokens)
	if len(scored) > n {
		scored = scored[:n]
	}

	terms := make([]string, len(scored))
	for i, ts := range scored {
		terms[i] = ts.Term
	}
	return terms
}
