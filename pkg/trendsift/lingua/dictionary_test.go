package lingua

import "testing"

func TestDictionaryLemmatizes(t *testing.T) {
	d := NewDictionary(map[string]Entry{
		"воды":    {Lemma: "вода", POS: Noun},
		"горячей": {Lemma: "горячий", POS: Adjective},
	})

	tokens := d.Analyze("Горячей воды")

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Lemma != "горячий" || tokens[0].POS != Adjective {
		t.Errorf("unexpected first token: %+v", tokens[0])
	}
	if tokens[1].Lemma != "вода" || tokens[1].POS != Noun {
		t.Errorf("unexpected second token: %+v", tokens[1])
	}
}

func TestDictionaryUnknownWordFallsBack(t *testing.T) {
	d := NewDictionary(nil)

	tokens := d.Analyze("Криптовалюта")

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Lemma != "криптовалюта" {
		t.Errorf("fallback lemma should be lowercased surface, got %q", tokens[0].Lemma)
	}
	if tokens[0].POS != Noun {
		t.Errorf("fallback POS should be NOUN, got %q", tokens[0].POS)
	}
}

func TestDictionaryEmptyText(t *testing.T) {
	d := NewDictionary(nil)

	if tokens := d.Analyze(""); len(tokens) != 0 {
		t.Errorf("empty text should produce no tokens, got %v", tokens)
	}
}

func TestDictionaryDefaultsApplied(t *testing.T) {
	d := NewDictionary(map[string]Entry{
		"Быстро": {}, // no lemma, no POS in the table
	})

	tokens := d.Analyze("быстро")

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Lemma != "быстро" {
		t.Errorf("missing lemma should default to lowercased key, got %q", tokens[0].Lemma)
	}
	if tokens[0].POS != Noun {
		t.Errorf("missing POS should default to NOUN, got %q", tokens[0].POS)
	}
}
