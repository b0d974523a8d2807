package salience

import (
	"reflect"
	"testing"
)

func TestTopTermsRanksByFrequency(t *testing.T) {
	tokens := []string{
		"инфляция", "инфляция", "инфляция",
		"ставка", "ставка",
		"банк",
	}

	got := TopTerms(tokens, 2)

	want := []string{"инфляция", "ставка"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTopTermsFewerDistinctThanN(t *testing.T) {
	tokens := []string{"банк", "ставка", "банк"}

	got := TopTerms(tokens, 10)

	if len(got) != 2 {
		t.Errorf("should return all distinct terms, got %v", got)
	}
}

func TestTopTermsSubsetOfVocabulary(t *testing.T) {
	tokens := []string{"банк", "кредит", "ставка", "вклад", "банк"}
	vocab := make(map[string]struct{})
	for _, tok := range tokens {
		vocab[tok] = struct{}{}
	}

	for _, term := range TopTerms(tokens, 3) {
		if _, ok := vocab[term]; !ok {
			t.Errorf("term %q not in input vocabulary", term)
		}
	}
}

func TestScoresNonIncreasing(t *testing.T) {
	tokens := []string{"а", "б", "б", "в", "в", "в", "г"}

	scored := Scores(tokens)

	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Errorf("scores must be non-increasing: %v", scored)
		}
	}
}

func TestScoresTieBreakLexicographic(t *testing.T) {
	// All terms occur once, so every score ties.
	tokens := []string{"гамма", "альфа", "бета"}

	got := TopTerms(tokens, 3)

	want := []string{"альфа", "бета", "гамма"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ties must break lexicographically: got %v, want %v", got, want)
	}
}

func TestTopTermsDefaultN(t *testing.T) {
	tokens := make([]string, 0, 15)
	for _, r := range []string{"а", "б", "в", "г", "д", "е", "ж", "з", "и", "к", "л", "м", "н", "о", "п"} {
		tokens = append(tokens, r)
	}

	if got := TopTerms(tokens, 0); len(got) != DefaultTopN {
		t.Errorf("default N should cap at %d, got %d", DefaultTopN, len(got))
	}
}

func TestScoresEmptyArticle(t *testing.T) {
	if got := Scores(nil); got != nil {
		t.Errorf("empty article should yield no scores, got %v", got)
	}
}
