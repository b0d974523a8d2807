package semantic

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/trendsift/pkg/trendsift/colloc"
	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
)

// VectorModel is a deterministic in-memory Model backed by a word-vector
// table. A sequence embeds as the mean of its known word vectors; unknown
// words are skipped. Useful for tests and offline runs where the hosted
// embedding backend is unavailable.
type VectorModel struct {
	vectors map[string][]float64
	dim     int
}

// NewVectorModel builds a model from word→vector mappings. All vectors
// must share one dimensionality; mismatched entries are dropped.
func NewVectorModel(vectors map[string][]float64) *VectorModel {
	m := &VectorModel{vectors: make(map[string][]float64, len(vectors))}
	for word, vec := range vectors {
		if len(vec) == 0 {
			continue
		}
		if m.dim == 0 {
			m.dim = len(vec)
		}
		if len(vec) != m.dim {
			continue
		}
		m.vectors[strings.ToLower(word)] = vec
	}
	return m
}

// LoadVectorModel reads a word-vector table from a YAML file.
// Format:
//
//	вода: [0.8, 0.1, 0.0]
//	река: [0.7, 0.2, 0.1]
func LoadVectorModel(path string) (*VectorModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load vector table: %w", err)
	}

	var vectors map[string][]float64
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("%w: vector table %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	return NewVectorModel(vectors), nil
}

// Similarity returns the cosine similarity of the mean vectors of the two
// sequences. Sequences with no known words embed as zero and score 0.
func (m *VectorModel) Similarity(_ context.Context, a, b []string) (float64, error) {
	return Cosine(m.embed(a), m.embed(b)), nil
}

func (m *VectorModel) embed(tokens []string) []float64 {
	if m.dim == 0 {
		return nil
	}
	sum := make([]float64, m.dim)
	known := 0
	for _, tok := range tokens {
		// Collocation tokens embed word by word.
		for _, word := range colloc.Parts(strings.ToLower(tok)) {
			vec, ok := m.vectors[word]
			if !ok {
				continue
			}
			for i := range sum {
				sum[i] += vec[i]
			}
			known++
		}
	}
	if known == 0 {
		return nil
	}
	for i := range sum {
		sum[i] /= float64(known)
	}
	return sum
}
