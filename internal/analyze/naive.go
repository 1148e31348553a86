package analyze

import (
	"sort"

	"github.com/verte-zerg/lexiscan/internal/model"
)

// AnalyzeNaive produces the same Result as AnalyzeWithLimits through the
// unoptimized shape the engine replaces: separate traversals for
// frequencies, character counting, and longest words, and a nested-loop
// top-K search over the frequency map. It exists as the benchmark
// baseline; both implementations share the tie-break rule so their
// outputs are identical.
func AnalyzeNaive(text string, topWords, topLongest int) model.Result {
	// Pass 1: word frequencies. Tokens are split on the same ASCII
	// whitespace set as the engine so both see identical words.
	freq := make(map[string]int)
	for _, token := range splitTokens(text) {
		word, _ := normalizeToken(token)
		if word != "" {
			freq[word]++
		}
	}

	// Pass 2: character count, scanning the whole input again.
	alphaChars := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			alphaChars++
		}
	}

	// O(n*K) top word selection: repeatedly scan the map for the best
	// entry not yet chosen.
	top := make([]model.WordCount, 0, topWords)
	chosen := make(map[string]bool, topWords)
	for len(top) < topWords {
		best := ""
		bestCount := 0
		for word, count := range freq {
			if chosen[word] {
				continue
			}
			if count > bestCount || (count == bestCount && word < best) {
				best = word
				bestCount = count
			}
		}
		if bestCount == 0 {
			break
		}
		chosen[best] = true
		top = append(top, model.WordCount{Word: best, Count: bestCount})
	}

	// Pass 3: collect every distinct word and fully sort by length.
	words := make([]string, 0, len(freq))
	for word := range freq {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	if len(words) > topLongest {
		words = words[:topLongest]
	}

	return model.Result{
		TotalAlphaChars: alphaChars,
		UniqueWords:     len(freq),
		TopWords:        top,
		Longest:         words,
	}
}

// splitTokens materializes every whitespace-delimited token, using the
// engine's isSpace so both implementations agree on token boundaries.
func splitTokens(text string) []string {
	var tokens []string
	for i := 0; i < len(text); {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		start := i
		for i < len(text) && !isSpace(text[i]) {
			i++
		}
		if start < i {
			tokens = append(tokens, text[start:i])
		}
	}
	return tokens
}
