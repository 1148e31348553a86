// Package analyze implements single-pass text analysis.
package analyze

import "strings"

// normalizeToken reduces a whitespace-delimited token to its canonical
// word: ASCII letters only, lowercased. It also returns how many ASCII
// letters the token contained, so the caller can advance its character
// counter without a second scan. The word may be empty (e.g. "123").
//
// Tokens that are already canonical are returned as-is without copying.
func normalizeToken(token string) (string, int) {
	canonical := true
	letters := 0
	for i := 0; i < len(token); i++ {
		switch {
		case token[i] >= 'a' && token[i] <= 'z':
			letters++
		case token[i] >= 'A' && token[i] <= 'Z':
			letters++
			canonical = false
		default:
			canonical = false
		}
	}
	if canonical {
		return token, letters
	}
	if letters == 0 {
		return "", 0
	}

	var b strings.Builder
	b.Grow(letters)
	for i := 0; i < len(token); i++ {
		ch := token[i]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch >= 'a' && ch <= 'z' {
			b.WriteByte(ch)
		}
	}
	return b.String(), letters
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
