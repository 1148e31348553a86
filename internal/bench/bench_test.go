package bench

import (
	"strings"
	"testing"
)

func TestRunImplementationsAgree(t *testing.T) {
	text := strings.Repeat("The quick Brown fox jumps over the lazy dog 42 times. ", 200)
	cmp, err := Run(text, 10, 5)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if cmp.Result.UniqueWords == 0 {
		t.Fatalf("expected non-empty result, got %+v", cmp.Result)
	}
	if len(cmp.Result.TopWords) == 0 || cmp.Result.TopWords[0].Word != "the" {
		t.Fatalf("unexpected top words: %+v", cmp.Result.TopWords)
	}
	if cmp.Naive < 0 || cmp.Optimized < 0 {
		t.Fatalf("negative timings: %+v", cmp)
	}
}

func TestRunEmptyInput(t *testing.T) {
	cmp, err := Run("", 10, 5)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if cmp.Result.TotalAlphaChars != 0 || len(cmp.Result.TopWords) != 0 {
		t.Fatalf("expected empty result, got %+v", cmp.Result)
	}
}
