// Package semantic defines the sequence-similarity capability used for
// deduplication and relevance scoring. The backing model is opaque;
// components hold a Model reference passed in at construction, never a
// package-level singleton.
package semantic

import (
	"context"
	"math"
)

// Model computes aggregate semantic similarity between two token
// sequences. Implementations must be symmetric (Similarity(a,b) ==
// Similarity(b,a)), maximal for identical sequences, and safe for
// concurrent use: the deduplicator issues similarity calls from multiple
// goroutines.
type Model interface {
	Similarity(ctx context.Context, a, b []string) (float64, error)
}

// Cosine returns the cosine similarity of two vectors, 0 when either
// vector is empty or zero.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
