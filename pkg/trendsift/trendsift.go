// Package trendsift is the batch analytics pipeline facade: raw news
// articles in, deduplicated role-relevance scores and trend artifacts out.
package trendsift

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/trendsift/pkg/trendsift/colloc"
	"github.com/cognicore/trendsift/pkg/trendsift/config"
	"github.com/cognicore/trendsift/pkg/trendsift/dedup"
	"github.com/cognicore/trendsift/pkg/trendsift/lingua"
	"github.com/cognicore/trendsift/pkg/trendsift/normalize"
	"github.com/cognicore/trendsift/pkg/trendsift/relevance"
	"github.com/cognicore/trendsift/pkg/trendsift/salience"
	"github.com/cognicore/trendsift/pkg/trendsift/semantic"
	"github.com/cognicore/trendsift/pkg/trendsift/summarize"
	"github.com/cognicore/trendsift/pkg/trendsift/trend"
)

// Article is one batch item with its derived fields. Raw Text is the only
// required input; Prepare fills the rest. Batch order is ingestion/time
// order and is preserved through every stage.
type Article struct {
	ID          string
	PublishedAt time.Time
	Text        string

	// Lemmas is the collocation-rewritten content-lemma sequence.
	Lemmas []string
	// Summary holds the extractive digest sentences, in rank order.
	Summary []string
	// Digest is the lemma sequence of the summary, used for similarity.
	Digest []string
}

// Options wires the engine's capabilities. Both models are explicit
// dependencies, never package-level state.
type Options struct {
	Analyzer lingua.Analyzer
	Semantic semantic.Model
	Settings config.Settings
}

// Engine runs the pipeline over materialized in-memory batches. One engine
// may serve many batches; a single run is synchronous.
type Engine struct {
	analyzer lingua.Analyzer
	sem      semantic.Model
	settings config.Settings
	norm     *normalize.Normalizer
	detector *trend.Detector
	entropy  *ulid.MonotonicEntropy
}

// New creates an engine from the given capabilities and settings.
func New(opts Options) *Engine {
	return &Engine{
		analyzer: opts.Analyzer,
		sem:      opts.Semantic,
		settings: opts.Settings,
		norm:     normalize.New(opts.Analyzer),
		detector: trend.NewDetector(trend.CloudConfig{
			OutDir:   opts.Settings.Trend.OutDir,
			MaskPath: opts.Settings.Trend.MaskPath,
			FontPath: opts.Settings.Trend.FontPath,
			Width:    opts.Settings.Trend.Width,
			Height:   opts.Settings.Trend.Height,
		}),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Prepare derives lemmas, summaries and digests for every article and
// rewrites the batch's lemma sequences with detected collocations.
// Collocation fitting is corpus-level, so preparation always covers the
// whole batch.
func (e *Engine) Prepare(batch []Article) []Article {
	out := make([]Article, len(batch))

	raw := make([][]string, len(batch))
	for i, a := range batch {
		raw[i] = e.norm.Lemmas(a.Text)
	}
	rewritten := colloc.FormCollocations(raw, colloc.Config{
		MinCount:  e.settings.Colloc.MinCount,
		Threshold: e.settings.Colloc.Threshold,
	})

	for i, a := range batch {
		if a.ID == "" {
			a.ID = ulid.MustNew(ulid.Now(), e.entropy).String()
		}
		a.Lemmas = rewritten[i]
		a.Summary = summarize.Summarize(a.Text, e.settings.SummarySentences)
		a.Digest = e.norm.Lemmas(strings.Join(a.Summary, " "))
		out[i] = a
	}
	return out
}

// Dedupe removes near-duplicate articles by digest similarity, keeping
// survivors in batch order.
func (e *Engine) Dedupe(ctx context.Context, batch []Article) ([]Article, error) {
	digests := make([][]string, len(batch))
	for i, a := range batch {
		digests[i] = a.Digest
	}

	res, err := dedup.Dedupe(ctx, digests, e.sem, dedup.Options{
		Threshold: e.settings.SimilarityThreshold,
		Workers:   e.settings.DedupeWorkers,
	})
	if err != nil {
		return nil, fmt.Errorf("dedupe batch: %w", err)
	}

	kept := make([]Article, len(res.Keep))
	for i, idx := range res.Keep {
		kept[i] = batch[idx]
	}
	return kept, nil
}

// RoleScore is one article's relevance verdict for a role.
type RoleScore struct {
	ArticleID string
	Score     float64
	Terms     []string
	Summary   []string
}

// RoleReport is the outcome of evaluating a batch for one role.
type RoleReport struct {
	ID          string
	Role        string
	GeneratedAt time.Time
	// Scores covers the deduplicated batch, in batch order. Articles
	// that normalize to nothing carry no terms and are omitted.
	Scores []RoleScore
}

// EvaluateRole runs the full per-role path: prepare, dedupe, extract
// salient terms and score each surviving article against the role's
// keywords.
func (e *Engine) EvaluateRole(ctx context.Context, batch []Article, role string, keywords []string) (RoleReport, error) {
	prepared := e.Prepare(batch)

	kept, err := e.Dedupe(ctx, prepared)
	if err != nil {
		return RoleReport{}, err
	}

	report := RoleReport{
		ID:          ulid.MustNew(ulid.Now(), e.entropy).String(),
		Role:        role,
		GeneratedAt: time.Now(),
	}

	for _, a := range kept {
		terms := salience.TopTerms(a.Lemmas, e.settings.TopTerms)
		if len(terms) == 0 {
			continue
		}
		score, err := relevance.Score(ctx, e.sem, terms, keywords)
		if err != nil {
			return RoleReport{}, fmt.Errorf("score article %s: %w", a.ID, err)
		}
		report.Scores = append(report.Scores, RoleScore{
			ArticleID: a.ID,
			Score:     score,
			Terms:     terms,
			Summary:   a.Summary,
		})
	}
	return report, nil
}

// DetectTrends ranks the prepared batch's frequency diff and returns its
// trending prefix. The batch must already be prepared and in time order.
func (e *Engine) DetectTrends(batch []Article) ([]trend.DiffEntry, error) {
	sequences := make([][]string, len(batch))
	for i, a := range batch {
		sequences[i] = a.Lemmas
	}
	return e.detector.Detect(sequences)
}

// RenderTrendCloud writes the word-cloud artifact for a trending set and
// returns the image path.
func (e *Engine) RenderTrendCloud(trending []trend.DiffEntry, now time.Time) (string, error) {
	return e.detector.Render(trending, now)
}
