package trendsift

import (
	"context"
	"errors"
	"testing"

	"github.com/cognicore/trendsift/pkg/trendsift/config"
	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
	"github.com/cognicore/trendsift/pkg/trendsift/lingua"
	"github.com/cognicore/trendsift/pkg/trendsift/semantic"
)

func testEngine() *Engine {
	analyzer := lingua.NewDictionary(map[string]lingua.Entry{
		"вода":    {Lemma: "вода", POS: lingua.Noun},
		"в":       {Lemma: "в", POS: lingua.Other},
		"реке":    {Lemma: "река", POS: lingua.Noun},
		"тёплая":  {Lemma: "тёплый", POS: lingua.Adjective},
		"летом":   {Lemma: "лето", POS: lingua.Noun},
		"из":      {Lemma: "из", POS: lingua.Other},
		"за":      {Lemma: "за", POS: lingua.Other},
		"жары":    {Lemma: "жара", POS: lingua.Noun},
		"банк":    {Lemma: "банк", POS: lingua.Noun},
		"выдал":   {Lemma: "выдать", POS: lingua.Verb},
		"кредит":  {Lemma: "кредит", POS: lingua.Noun},
		"фермеру": {Lemma: "фермер", POS: lingua.Noun},
	})

	model := semantic.NewVectorModel(map[string][]float64{
		"вода":    {1, 0},
		"река":    {1, 0},
		"тёплый":  {1, 0},
		"лето":    {1, 0},
		"жара":    {0.9, 0.1},
		"банк":    {0, 1},
		"выдать":  {0, 1},
		"кредит":  {0, 1},
		"фермер":  {0, 1},
		"финансы": {0, 1},
	})

	return New(Options{
		Analyzer: analyzer,
		Semantic: model,
		Settings: config.Default(),
	})
}

func testBatch() []Article {
	return []Article{
		{Text: "Вода в реке тёплая летом."},
		{Text: "Вода в реке тёплая летом из-за жары."},
		{Text: "Банк выдал кредит фермеру."},
	}
}

func TestPrepareDerivesFields(t *testing.T) {
	e := testEngine()

	prepared := e.Prepare(testBatch())

	for i, a := range prepared {
		if a.ID == "" {
			t.Errorf("article %d has no ID after Prepare", i)
		}
		if len(a.Lemmas) == 0 {
			t.Errorf("article %d has no lemmas", i)
		}
		if len(a.Summary) == 0 {
			t.Errorf("article %d has no summary", i)
		}
		if len(a.Digest) == 0 {
			t.Errorf("article %d has no digest", i)
		}
	}
}

func TestDedupeDropsLongerDigest(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	prepared := e.Prepare(testBatch())
	kept, err := e.Dedupe(ctx, prepared)
	if err != nil {
		t.Fatal(err)
	}

	if len(kept) != 2 {
		t.Fatalf("near-duplicate pair should collapse to one survivor, kept %d", len(kept))
	}
	// The shorter digest (article 0) survives, the extended variant goes.
	if kept[0].Text != prepared[0].Text {
		t.Errorf("shorter digest should survive, kept %q", kept[0].Text)
	}
	if kept[1].Text != prepared[2].Text {
		t.Errorf("unrelated article must survive, kept %q", kept[1].Text)
	}
}

func TestEvaluateRole(t *testing.T) {
	e := testEngine()

	report, err := e.EvaluateRole(context.Background(), testBatch(), "analyst", []string{"финансы"})
	if err != nil {
		t.Fatal(err)
	}

	if report.ID == "" || report.Role != "analyst" {
		t.Errorf("report header incomplete: %+v", report)
	}
	if len(report.Scores) != 2 {
		t.Fatalf("expected 2 scored survivors, got %d", len(report.Scores))
	}

	// The finance article must clearly outscore the river article.
	river, finance := report.Scores[0], report.Scores[1]
	if finance.Score <= river.Score {
		t.Errorf("finance article %f should outscore river article %f", finance.Score, river.Score)
	}
	for _, s := range report.Scores {
		if len(s.Terms) == 0 {
			t.Errorf("scored article %s has no terms", s.ArticleID)
		}
	}
}

func TestEvaluateRoleEmptyKeywords(t *testing.T) {
	e := testEngine()

	_, err := e.EvaluateRole(context.Background(), testBatch(), "dj", nil)

	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Errorf("empty keyword list must fail with ErrEmptyInput, got %v", err)
	}
}

func TestDetectTrendsValidatesBatchSize(t *testing.T) {
	e := testEngine()

	_, err := e.DetectTrends(e.Prepare(testBatch()))

	if !errors.Is(err, internalerr.ErrBatchTooShort) {
		t.Errorf("short batch must fail validation, got %v", err)
	}
}
