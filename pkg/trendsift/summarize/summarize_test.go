package summarize

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Банки подняли ставки. Вкладчики довольны! А что дальше?")

	want := []string{
		"Банки подняли ставки.",
		"Вкладчики довольны!",
		"А что дальше?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitSentencesTerminatorRuns(t *testing.T) {
	got := SplitSentences("Неужели?! Да... Конечно")

	want := []string{"Неужели?!", "Да...", "Конечно"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSummarizeReturnsNSentences(t *testing.T) {
	text := "Центральный банк поднял ключевую ставку. " +
		"Ставка банка выросла до рекорда. " +
		"Банк объяснил решение инфляцией. " +
		"Погода в городе была солнечной. " +
		"Рынок отреагировал на ставку банка."

	got := Summarize(text, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	originals := SplitSentences(text)
	for _, s := range got {
		found := false
		for _, o := range originals {
			if s == o {
				found = true
			}
		}
		if !found {
			t.Errorf("summary sentence %q is not a verbatim original sentence", s)
		}
	}
}

func TestSummarizeCentralSentenceFirst(t *testing.T) {
	// Four sentences about the bank rate and one outlier: an on-topic
	// sentence must outrank the outlier.
	text := "Центральный банк поднял ключевую ставку. " +
		"Ставка банка выросла до рекорда. " +
		"Банк объяснил решение инфляцией. " +
		"Кошка спала на тёплом подоконнике. " +
		"Рынок отреагировал на ставку банка."

	got := Summarize(text, 3)

	for _, s := range got {
		if strings.Contains(s, "Кошка") {
			t.Errorf("off-topic sentence made the summary: %v", got)
		}
	}
}

func TestSummarizeRankOrderNotDocumentOrder(t *testing.T) {
	// The third sentence shares a word with each of the others, while no
	// other pair shares any: the similarity graph is a star and the third
	// sentence is its hub, so it must lead the summary.
	text := "Погода в столице была тёплой. " +
		"Рынок акций резко вырос. " +
		"Погода и рынок волновали банк. " +
		"Банк сохранил ставку."

	got := Summarize(text, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "Погода и рынок волновали банк." {
		t.Errorf("most central sentence should lead the summary, got %q first in %v", got[0], got)
	}
	if reflect.DeepEqual(got, SplitSentences(text)[:3]) {
		t.Errorf("summary should follow rank order, not document order: %v", got)
	}
}

func TestSummarizeShortText(t *testing.T) {
	got := Summarize("Одно предложение.", 3)

	want := []string{"Одно предложение."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	if got := Summarize("", 3); got != nil {
		t.Errorf("empty text should summarize to nothing, got %v", got)
	}
}

func TestSummarizeDefaultCount(t *testing.T) {
	text := "Раз банк. Два банк. Три банк. Четыре банк. Пять банк."

	if got := Summarize(text, 0); len(got) != DefaultSentences {
		t.Errorf("default summary size should be %d, got %d", DefaultSentences, len(got))
	}
}
