// Package model defines shared data structures.
package model

import "time"

// AnalyzeConfig defines the inputs of one analysis command.
type AnalyzeConfig struct {
	Layout           string
	CorpusPath       string
	WordlistPath     string
	Sample           int
	Seed             int64
	Category         Category
	Top              int
	Magic            bool
	IncludeThumbAlt  bool
	IncludeThumbRoll bool
	EpicInequality   bool
	Sanitize         bool
}

// HistoryConfig defines filters for listing saved runs.
type HistoryConfig struct {
	Layout string
	Since  *time.Time
	Last   int
}

// Run describes a saved analysis.
type Run struct {
	ID         int64
	CreatedAt  time.Time
	LayoutName string
	Letters    string
	CorpusPath string
	Category   Category
	Stats      Stats
}

// RunSummary is a lightweight row for history listings.
type RunSummary struct {
	ID         int64
	CreatedAt  time.Time
	LayoutName string
	Chars      int64
	Score      float64
}

// NgramCount pairs an n-gram with its occurrence count.
type NgramCount struct {
	Ngram Ngram
	Count int64
}
