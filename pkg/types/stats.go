// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// YearlyStat is one prevalence row: how many unique articles published in
// Year matched the keyword, out of all unique articles that year.
type YearlyStat struct {
	// Journal is the input journal name for per-journal tables; empty in
	// the overall (all journals pooled) table.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// Keyword is the clean pattern label.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Matched is the number of distinct article identifiers matching the
	// keyword in Year.
	Matched int `json:"matched" yaml:"matched"`

	// Total is the number of distinct article identifiers in Year,
	// regardless of match.
	Total int `json:"total" yaml:"total"`

	// Share is Matched/Total, defined as 0 when Total is 0.
	Share float64 `json:"share" yaml:"share"`

	// Percentage is Share * 100.
	Percentage float64 `json:"percentage" yaml:"percentage"`
}
