package analyze

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/lexiscan/internal/model"
)

func TestAnalyzeCountsAndOrder(t *testing.T) {
	result := Analyze("aa bb aa cc aa bb")

	if result.TotalAlphaChars != 12 {
		t.Fatalf("expected 12 alphabetic chars, got %d", result.TotalAlphaChars)
	}
	if result.UniqueWords != 3 {
		t.Fatalf("expected 3 unique words, got %d", result.UniqueWords)
	}
	wantTop := []model.WordCount{{Word: "aa", Count: 3}, {Word: "bb", Count: 2}, {Word: "cc", Count: 1}}
	if !reflect.DeepEqual(result.TopWords, wantTop) {
		t.Fatalf("unexpected top words: %+v", result.TopWords)
	}
	wantLongest := []string{"aa", "bb", "cc"}
	if !reflect.DeepEqual(result.Longest, wantLongest) {
		t.Fatalf("unexpected longest words: %v", result.Longest)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \t\n  "} {
		result := Analyze(input)
		if result.TotalAlphaChars != 0 {
			t.Fatalf("input %q: expected 0 chars, got %d", input, result.TotalAlphaChars)
		}
		if len(result.TopWords) != 0 || len(result.Longest) != 0 {
			t.Fatalf("input %q: expected empty result, got %+v", input, result)
		}
	}
}

func TestAnalyzeSkipsNonAlphabeticTokens(t *testing.T) {
	result := Analyze("123 456")
	if result.TotalAlphaChars != 0 {
		t.Fatalf("expected 0 chars, got %d", result.TotalAlphaChars)
	}
	if len(result.TopWords) != 0 || len(result.Longest) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestAnalyzeCaseFolding(t *testing.T) {
	result := Analyze("Rust RUST rust")
	if result.UniqueWords != 1 {
		t.Fatalf("expected 1 unique word, got %d", result.UniqueWords)
	}
	if len(result.TopWords) != 1 || result.TopWords[0].Word != "rust" || result.TopWords[0].Count != 3 {
		t.Fatalf("unexpected top words: %+v", result.TopWords)
	}
	if result.TotalAlphaChars != 12 {
		t.Fatalf("expected 12 chars, got %d", result.TotalAlphaChars)
	}
}

func TestAnalyzeElevenSingletonsKeepsTen(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliett", "kilo"}
	result := Analyze(strings.Join(words, " "))
	if len(result.TopWords) != 10 {
		t.Fatalf("expected 10 top words, got %d", len(result.TopWords))
	}
	// All counts equal, so the lexicographically last word is excluded.
	for _, wc := range result.TopWords {
		if wc.Word == "kilo" {
			t.Fatalf("expected kilo to be excluded, got %+v", result.TopWords)
		}
	}
	for i := 1; i < len(result.TopWords); i++ {
		if result.TopWords[i-1].Word > result.TopWords[i].Word {
			t.Fatalf("tie order not lexicographic: %+v", result.TopWords)
		}
	}
}

func TestAnalyzeStripsNonLetters(t *testing.T) {
	result := Analyze("don't stop-now! x1y2z3")
	wantTop := []model.WordCount{{Word: "dont", Count: 1}, {Word: "stopnow", Count: 1}, {Word: "xyz", Count: 1}}
	if !reflect.DeepEqual(result.TopWords, wantTop) {
		t.Fatalf("unexpected top words: %+v", result.TopWords)
	}
	if result.TotalAlphaChars != 14 {
		t.Fatalf("expected 14 chars, got %d", result.TotalAlphaChars)
	}
}

func TestAnalyzeCharCountIgnoresTokenBoundaries(t *testing.T) {
	a := Analyze("abc def")
	b := Analyze("a bc d ef")
	if a.TotalAlphaChars != b.TotalAlphaChars {
		t.Fatalf("char counts differ: %d vs %d", a.TotalAlphaChars, b.TotalAlphaChars)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	input := randomText(2000, 17)
	first := Analyze(input)
	for i := 0; i < 5; i++ {
		if got := Analyze(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n%+v\nvs\n%+v", i, got, first)
		}
	}
}

func TestAnalyzeNaiveAgreesOnUnicodeWhitespace(t *testing.T) {
	// Only ASCII whitespace separates tokens; a non-breaking space is an
	// ordinary non-letter byte for both implementations.
	input := "foo bar baz qux"
	fast := AnalyzeWithLimits(input, 10, 5)
	slow := AnalyzeNaive(input, 10, 5)
	if !reflect.DeepEqual(fast, slow) {
		t.Fatalf("engine and naive disagree:\n%+v\nvs\n%+v", fast, slow)
	}
	if fast.UniqueWords != 2 {
		t.Fatalf("expected 2 unique words, got %d", fast.UniqueWords)
	}
	wantTop := []model.WordCount{{Word: "bazqux", Count: 1}, {Word: "foobar", Count: 1}}
	if !reflect.DeepEqual(fast.TopWords, wantTop) {
		t.Fatalf("unexpected top words: %+v", fast.TopWords)
	}
}

func TestAnalyzeMatchesBruteForce(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		input := randomText(1500, seed)
		fast := AnalyzeWithLimits(input, 10, 5)
		slow := AnalyzeNaive(input, 10, 5)
		if !reflect.DeepEqual(fast, slow) {
			t.Fatalf("seed %d: engine and brute force disagree:\n%+v\nvs\n%+v", seed, fast, slow)
		}
	}
}

func randomText(tokens int, seed int64) string {
	rnd := rand.New(rand.NewSource(seed))
	vocab := []string{"speed", "memory", "Algorithm", "data", "STRUCTURE", "heap", "map,", "scan!", "123", "go", "efficiency"}
	var b strings.Builder
	for i := 0; i < tokens; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(vocab[rnd.Intn(len(vocab))])
		if rnd.Intn(20) == 0 {
			fmt.Fprintf(&b, " %d", rnd.Intn(1000))
		}
	}
	return b.String()
}
