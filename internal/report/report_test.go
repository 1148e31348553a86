package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/lexiscan/internal/bench"
	"github.com/verte-zerg/lexiscan/internal/model"
)

func TestRenderResult(t *testing.T) {
	result := model.Result{
		TotalAlphaChars: 12,
		UniqueWords:     3,
		TopWords:        []model.WordCount{{Word: "aa", Count: 3}, {Word: "bb", Count: 2}},
		Longest:         []string{"aa", "bb"},
	}
	var buf bytes.Buffer
	if err := RenderResult(&buf, result, 1500*time.Microsecond); err != nil {
		t.Fatalf("RenderResult failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Alphabetic chars: 12", "Unique words: 3", "Top Words", "Longest Words", "aa", "█"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderResultEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderResult(&buf, model.Result{}, 0); err != nil {
		t.Fatalf("RenderResult failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No words found.") {
		t.Fatalf("expected empty-result notice:\n%s", buf.String())
	}
}

func TestRenderComparison(t *testing.T) {
	cmp := bench.Comparison{
		Naive:     40 * time.Millisecond,
		Optimized: 4 * time.Millisecond,
		Speedup:   10,
	}
	var buf bytes.Buffer
	if err := RenderComparison(&buf, cmp); err != nil {
		t.Fatalf("RenderComparison failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Speedup:   10.0x") {
		t.Fatalf("missing speedup line:\n%s", buf.String())
	}
}

func TestRenderRuns(t *testing.T) {
	runs := []model.RunAggregate{
		{RunID: 1, StartedAt: time.Unix(0, 0), Source: "sample.txt", InputBytes: 100, AlphaChars: 80, UniqueWords: 10, DurationMs: 2},
	}
	var buf bytes.Buffer
	if err := RenderRuns(&buf, runs); err != nil {
		t.Fatalf("RenderRuns failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "sample.txt") || !strings.Contains(out, "Unique") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
