package generator

import (
	"strings"
	"testing"
)

func TestGenerateCountAndWords(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}
	text := New(7).Generate(words, 20, 0, 0, nil)
	fields := strings.Fields(text)
	if len(fields) != 20 {
		t.Fatalf("expected 20 words, got %d", len(fields))
	}
	allowed := map[string]bool{"alpha": true, "beta": true, "gamma": true}
	for _, f := range fields {
		if !allowed[f] {
			t.Fatalf("unexpected word %q", f)
		}
	}
}

func TestGenerateSeededDeterminism(t *testing.T) {
	words := []string{"one", "two", "three"}
	a := New(42).Generate(words, 50, 0.5, 0.5, []rune(".,!"))
	b := New(42).Generate(words, 50, 0.5, 0.5, []rune(".,!"))
	if a != b {
		t.Fatalf("same seed produced different text:\n%q\nvs\n%q", a, b)
	}
}

func TestGenerateEmptyInputs(t *testing.T) {
	if got := New(1).Generate(nil, 10, 0, 0, nil); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
	if got := New(1).Generate([]string{"a"}, 0, 0, 0, nil); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}
