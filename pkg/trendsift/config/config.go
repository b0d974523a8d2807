// Package config loads pipeline settings and role keyword lists from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
)

// Settings holds every tunable of the pipeline. Zero values fall back to
// the package defaults at load time.
type Settings struct {
	// SimilarityThreshold is the near-duplicate cutoff for digests.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	// TopTerms is the salient-term count per article.
	TopTerms int `yaml:"top_terms"`
	// SummarySentences is the digest size in sentences.
	SummarySentences int `yaml:"summary_sentences"`
	// DedupeWorkers bounds the pairwise similarity fan-out.
	DedupeWorkers int `yaml:"dedupe_workers"`

	Colloc CollocSettings `yaml:"colloc"`
	Trend  TrendSettings  `yaml:"trend"`

	// LemmaDictPath points at the lemma dictionary for the offline
	// analyzer; empty means surface-form fallback only.
	LemmaDictPath string `yaml:"lemma_dict"`
	// VectorTablePath points at the word-vector table for the offline
	// similarity model.
	VectorTablePath string `yaml:"vector_table"`

	// Roles maps a role name to its keyword list.
	Roles map[string][]string `yaml:"roles"`
}

// CollocSettings tunes collocation detection.
type CollocSettings struct {
	MinCount  int     `yaml:"min_count"`
	Threshold float64 `yaml:"threshold"`
}

// TrendSettings locates trend-rendering assets and output.
type TrendSettings struct {
	OutDir   string `yaml:"out_dir"`
	MaskPath string `yaml:"mask"`
	FontPath string `yaml:"font"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// Default returns the standard pipeline settings.
func Default() Settings {
	return Settings{
		SimilarityThreshold: 0.87,
		TopTerms:            10,
		SummarySentences:    3,
		DedupeWorkers:       4,
		Colloc: CollocSettings{
			MinCount:  5,
			Threshold: 10.0,
		},
		Trend: TrendSettings{
			OutDir: "imgs/word_clouds",
		},
	}
}

// Load reads settings from a YAML file, filling unset fields with
// defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: settings %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the numeric bounds a misconfigured file can break.
func (s Settings) Validate() error {
	if s.SimilarityThreshold <= 0 || s.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: similarity_threshold %f outside (0, 1]",
			internalerr.ErrInvalidConfig, s.SimilarityThreshold)
	}
	if s.TopTerms <= 0 {
		return fmt.Errorf("%w: top_terms must be positive", internalerr.ErrInvalidConfig)
	}
	if s.SummarySentences <= 0 {
		return fmt.Errorf("%w: summary_sentences must be positive", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Keywords returns the keyword list for a role.
func (s Settings) Keywords(role string) ([]string, error) {
	kws, ok := s.Roles[role]
	if !ok || len(kws) == 0 {
		return nil, fmt.Errorf("%w: role %q has no keywords", internalerr.ErrEmptyInput, role)
	}
	return kws, nil
}
