package relevance

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
	"github.com/cognicore/trendsift/pkg/trendsift/semantic"
)

func financeModel() *semantic.VectorModel {
	return semantic.NewVectorModel(map[string][]float64{
		"банк":    {0.9, 0.1},
		"кредит":  {0.8, 0.3},
		"финансы": {0.7, 0.4},
		"деньги":  {0.6, 0.5},
	})
}

func TestScoreIsMedianOfCrossProduct(t *testing.T) {
	model := financeModel()
	ctx := context.Background()
	terms := []string{"банк", "кредит"}
	keywords := []string{"финансы", "деньги"}

	got, err := Score(ctx, model, terms, keywords)
	if err != nil {
		t.Fatal(err)
	}

	// Recompute the four pairwise similarities by hand.
	var sims []float64
	for _, term := range terms {
		for _, kw := range keywords {
			sim, _ := model.Similarity(ctx, []string{term}, []string{kw})
			sims = append(sims, sim)
		}
	}
	want := median(sims)

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %f, want median %f of %v", got, want, sims)
	}
	if got <= 0 || got > 1 {
		t.Errorf("score out of expected range: %f", got)
	}
}

func TestScoreEmptyTerms(t *testing.T) {
	_, err := Score(context.Background(), financeModel(), nil, []string{"финансы"})

	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Errorf("want ErrEmptyInput, got %v", err)
	}
}

func TestScoreEmptyKeywords(t *testing.T) {
	_, err := Score(context.Background(), financeModel(), []string{"банк"}, nil)

	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Errorf("want ErrEmptyInput, got %v", err)
	}
}

func TestMedianOddAndEven(t *testing.T) {
	if got := median([]float64{0.25, 1.0, 0.5}); got != 0.5 {
		t.Errorf("odd median: got %f, want 0.5", got)
	}
	if got := median([]float64{0.25, 0.5, 0.75, 1.0}); got != 0.625 {
		t.Errorf("even median: got %f, want 0.625", got)
	}
}
