// Package summarize produces fixed-size extractive summaries: the top
// sentences of an article by graph-centrality ranking over a sentence
// similarity matrix.
package summarize

import (
	"math"
	"sort"

	"github.com/cognicore/trendsift/pkg/trendsift/semantic"
)

// DefaultSentences is the summary size when the caller does not ask for a
// specific count.
const DefaultSentences = 3

// Power-iteration parameters.
const (
	damping       = 0.85
	epsilon       = 1e-4
	maxIterations = 30
)

// Summarize returns the n most central sentences of the text, in rank
// order rather than document order. Texts with at most n sentences return
// all sentences, ranked.
func Summarize(text string, n int) []string {
	if n <= 0 {
		n = DefaultSentences
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}
	if len(sentences) == 1 {
		return sentences
	}

	scores := rank(sentences)

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if len(order) > n {
		order = order[:n]
	}
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = sentences[idx]
	}
	return out
}

// rank scores sentences by power iteration over the normalized similarity
// matrix, damped in the usual PageRank manner.
func rank(sentences []string) []float64 {
	n := len(sentences)
	vectors := sentenceVectors(sentences)

	// Row-stochastic similarity matrix.
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		var rowSum float64
		for j := range matrix[i] {
			if i == j {
				continue
			}
			sim := semantic.Cosine(vectors[i], vectors[j])
			matrix[i][j] = sim
			rowSum += sim
		}
		if rowSum == 0 {
			// Isolated sentence links uniformly to the rest.
			for j := range matrix[i] {
				if i != j {
					matrix[i][j] = 1 / float64(n-1)
				}
			}
			continue
		}
		for j := range matrix[i] {
			matrix[i][j] /= rowSum
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / float64(n)
	}

	for iter := 0; iter < maxIterations; iter++ {
		next := make([]float64, n)
		for j := 0; j < n; j++ {
			var sum float64
			for i := 0; i < n; i++ {
				sum += matrix[i][j] * scores[i]
			}
			next[j] = (1-damping)/float64(n) + damping*sum
		}

		var delta float64
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores = next
		if delta < epsilon {
			break
		}
	}
	return scores
}

// sentenceVectors builds tf-idf vectors over the article's own sentences.
func sentenceVectors(sentences []string) [][]float64 {
	n := len(sentences)

	tokenized := make([][]string, n)
	df := make(map[string]int)
	vocab := make(map[string]int)
	for i, s := range sentences {
		tokenized[i] = words(s)
		seen := make(map[string]struct{})
		for _, w := range tokenized[i] {
			if _, ok := vocab[w]; !ok {
				vocab[w] = len(vocab)
			}
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				df[w]++
			}
		}
	}

	vectors := make([][]float64, n)
	for i, toks := range tokenized {
		vec := make([]float64, len(vocab))
		if len(toks) == 0 {
			vectors[i] = vec
			continue
		}
		counts := make(map[string]int, len(toks))
		for _, w := range toks {
			counts[w]++
		}
		for w, c := range counts {
			tf := float64(c) / float64(len(toks))
			idf := math.Log(float64(n)/(1+float64(df[w]))) + 1
			vec[vocab[w]] = tf * idf
		}
		vectors[i] = vec
	}
	return vectors
}
