// Package report renders analysis results for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/lexiscan/internal/bench"
	"github.com/verte-zerg/lexiscan/internal/model"
)

const maxBarWidth = 30

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// RenderResult prints the analysis summary, the top words with count
// bars, and the longest words.
func RenderResult(w io.Writer, result model.Result, elapsed time.Duration) error {
	useColor := shouldUseColor(w)

	lines := []string{
		style(titleStyle, "Analysis", useColor),
		fmt.Sprintf("Alphabetic chars: %d", result.TotalAlphaChars),
		fmt.Sprintf("Unique words: %d", result.UniqueWords),
		fmt.Sprintf("Elapsed: %s", elapsed.Round(time.Microsecond)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if err := renderTopWords(w, result.TopWords, useColor); err != nil {
		return err
	}
	return renderLongest(w, result.Longest, useColor)
}

func renderTopWords(w io.Writer, topWords []model.WordCount, useColor bool) error {
	if _, err := fmt.Fprintln(w, style(titleStyle, "Top Words", useColor)); err != nil {
		return err
	}
	if len(topWords) == 0 {
		_, err := fmt.Fprintln(w, style(mutedStyle, "No words found.", useColor))
		return err
	}

	maxCount := topWords[0].Count
	headers := []string{"Rank", "Word", "Count", ""}
	rows := make([][]string, 0, len(topWords))
	for i, wc := range topWords {
		bar := countBar(wc.Count, maxCount)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			wc.Word,
			fmt.Sprintf("%d", wc.Count),
			style(barStyle, bar, useColor),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func renderLongest(w io.Writer, longest []string, useColor bool) error {
	if _, err := fmt.Fprintln(w, style(titleStyle, "Longest Words", useColor)); err != nil {
		return err
	}
	if len(longest) == 0 {
		_, err := fmt.Fprintln(w, style(mutedStyle, "No words found.", useColor))
		return err
	}
	headers := []string{"Rank", "Word", "Length"}
	rows := make([][]string, 0, len(longest))
	for i, word := range longest {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			word,
			fmt.Sprintf("%d", len(word)),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderComparison prints naive and optimized timings with the speedup.
func RenderComparison(w io.Writer, cmp bench.Comparison) error {
	useColor := shouldUseColor(w)
	lines := []string{
		style(titleStyle, "Benchmark", useColor),
		fmt.Sprintf("Naive:     %s", cmp.Naive.Round(time.Microsecond)),
		fmt.Sprintf("Optimized: %s", cmp.Optimized.Round(time.Microsecond)),
	}
	if cmp.Speedup > 0 {
		lines = append(lines, fmt.Sprintf("Speedup:   %.1fx", cmp.Speedup))
	} else {
		lines = append(lines, style(mutedStyle, "Speedup:   too fast to measure", useColor))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderRuns prints stored runs as a table, most recent last.
func RenderRuns(w io.Writer, runs []model.RunAggregate) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	headers := []string{"ID", "Started", "Source", "Bytes", "Chars", "Unique", "ms"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", run.RunID),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Source,
			fmt.Sprintf("%d", run.InputBytes),
			fmt.Sprintf("%d", run.AlphaChars),
			fmt.Sprintf("%d", run.UniqueWords),
			fmt.Sprintf("%d", run.DurationMs),
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func countBar(count, maxCount int) string {
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	width := count * maxBarWidth / maxCount
	if width < 1 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func style(s lipgloss.Style, text string, useColor bool) string {
	if !useColor {
		return text
	}
	return s.Render(text)
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
