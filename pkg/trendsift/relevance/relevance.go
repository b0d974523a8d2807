// Package relevance scores an article against a role's keyword list: the
// median semantic similarity over the full (term × keyword) cross product.
// Median, not mean, so a few spurious pairings don't move the score.
package relevance

import (
	"context"
	"fmt"
	"sort"

	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
	"github.com/cognicore/trendsift/pkg/trendsift/semantic"
)

// Score computes the article's relevance for a role. Terms are the
// article's salient terms; keywords describe the role. Either list being
// empty is an error (no median of zero values) — callers must guarantee
// non-empty inputs.
func Score(ctx context.Context, model semantic.Model, terms, keywords []string) (float64, error) {
	if len(terms) == 0 {
		return 0, fmt.Errorf("%w: no terms to score", internalerr.ErrEmptyInput)
	}
	if len(keywords) == 0 {
		return 0, fmt.Errorf("%w: no role keywords", internalerr.ErrEmptyInput)
	}

	sims := make([]float64, 0, len(terms)*len(keywords))
	for _, term := range terms {
		for _, kw := range keywords {
			sim, err := model.Similarity(ctx, []string{term}, []string{kw})
			if err != nil {
				return 0, fmt.Errorf("similarity %q/%q: %w", term, kw, err)
			}
			sims = append(sims, sim)
		}
	}

	return median(sims), nil
}

// median of a non-empty sample; the even case averages the middle pair.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
