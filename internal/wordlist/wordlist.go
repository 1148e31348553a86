// Package wordlist loads word lists for sample text generation.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Default is the built-in word list used when no file is provided. It
// mixes lengths so longest-word selection has something to distinguish.
var Default = []string{
	"performance", "optimization", "memory", "speed", "efficiency",
	"benchmark", "algorithm", "data", "structure", "heap",
	"traversal", "frequency", "selector", "token", "normalization",
	"counter", "analysis", "report", "scan", "word",
	"go", "map", "key", "pass", "tie",
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
