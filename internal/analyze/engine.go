package analyze

import (
	"github.com/verte-zerg/lexiscan/internal/model"
	"github.com/verte-zerg/lexiscan/internal/topk"
)

// Default selector capacities.
const (
	DefaultTopWords   = 10
	DefaultTopLongest = 5
)

// Analyze runs a single-pass analysis with the default capacities.
func Analyze(text string) model.Result {
	return AnalyzeWithLimits(text, DefaultTopWords, DefaultTopLongest)
}

// AnalyzeWithLimits tokenizes the input once, normalizing each token and
// counting ASCII letters in the same scan, then reduces the frequency
// table through two bounded selectors: the topWords most frequent words
// and the topLongest longest distinct words. Degenerate input yields a
// zero-valued Result, never an error.
func AnalyzeWithLimits(text string, topWords, topLongest int) model.Result {
	table := NewTable()
	alphaChars := 0

	for i := 0; i < len(text); {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		start := i
		for i < len(text) && !isSpace(text[i]) {
			i++
		}
		if start == i {
			continue
		}
		word, letters := normalizeToken(text[start:i])
		alphaChars += letters
		if word != "" {
			table.Observe(word)
		}
	}

	byCount := topk.New(topWords, lessByCount)
	byLength := topk.New(topLongest, lessByLength)
	table.Range(func(word string, count int) {
		byCount.Offer(model.WordCount{Word: word, Count: count})
		byLength.Offer(word)
	})

	return model.Result{
		TotalAlphaChars: alphaChars,
		UniqueWords:     table.Len(),
		TopWords:        byCount.Descending(),
		Longest:         byLength.Descending(),
	}
}

// lessByCount orders entries by count; equal counts rank the
// lexicographically smaller word higher so ties are deterministic.
func lessByCount(a, b model.WordCount) bool {
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Word > b.Word
}

// lessByLength orders words by length with the same lexicographic
// tie-break as lessByCount.
func lessByLength(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a > b
}
