// Package bench times the optimized engine against the naive baseline.
package bench

import (
	"fmt"
	"reflect"
	"time"

	"github.com/verte-zerg/lexiscan/internal/analyze"
	"github.com/verte-zerg/lexiscan/internal/model"
)

// Comparison holds the timings of both implementations over one input.
type Comparison struct {
	Result    model.Result
	Naive     time.Duration
	Optimized time.Duration
	Speedup   float64
}

// Run analyzes the text with both implementations and verifies they
// agree. A mismatch means a selector or tie-break bug and is returned as
// an error rather than silently reporting one of the two.
func Run(text string, topWords, topLongest int) (Comparison, error) {
	naiveStart := time.Now()
	naiveResult := analyze.AnalyzeNaive(text, topWords, topLongest)
	naiveElapsed := time.Since(naiveStart)

	fastStart := time.Now()
	fastResult := analyze.AnalyzeWithLimits(text, topWords, topLongest)
	fastElapsed := time.Since(fastStart)

	if !reflect.DeepEqual(naiveResult, fastResult) {
		return Comparison{}, fmt.Errorf("implementations disagree: naive %+v, optimized %+v", naiveResult, fastResult)
	}

	speedup := 0.0
	if fastElapsed > 0 {
		speedup = float64(naiveElapsed) / float64(fastElapsed)
	}
	return Comparison{
		Result:    fastResult,
		Naive:     naiveElapsed,
		Optimized: fastElapsed,
		Speedup:   speedup,
	}, nil
}
