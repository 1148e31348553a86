// Package model defines shared data structures.
package model

import "time"

// Config defines analysis settings.
type Config struct {
	TopWords   int
	TopLongest int
	Save       bool
}

// GenerateConfig defines sample text generation settings.
type GenerateConfig struct {
	Words        int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	Seed         int64
	WordListPath string
}

// WordCount pairs a canonical word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// Result holds the outcome of one analysis pass. TopWords is ordered by
// descending count and Longest by descending length, ties broken
// lexicographically.
type Result struct {
	TotalAlphaChars int
	UniqueWords     int
	TopWords        []WordCount
	Longest         []string
}

// RunStats captures a completed analysis run for persistence.
type RunStats struct {
	StartedAt   time.Time
	Source      string
	InputBytes  int
	AlphaChars  int
	UniqueWords int
	DurationMs  int64
}

// RunsFilter defines filters for listing stored runs.
type RunsFilter struct {
	Since *time.Time
	Last  int
}

// RunAggregate summarizes a stored run for reporting.
type RunAggregate struct {
	RunID       int64
	StartedAt   time.Time
	Source      string
	InputBytes  int
	AlphaChars  int
	UniqueWords int
	DurationMs  int64
}
