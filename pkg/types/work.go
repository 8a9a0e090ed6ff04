// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Work holds the metadata retained for one article retrieved from OpenAlex.
// The identifier preference when building a Work is OpenAlex work ID, then
// DOI, then title, so every record upstream of aggregation carries a usable
// dedup key.
type Work struct {
	// ID is the unique article identifier within a discipline.
	ID string `json:"id" yaml:"id"`

	// Discipline is the journal-list label the work was fetched under.
	Discipline string `json:"discipline" yaml:"discipline"`

	// Journal is the input name of the journal the work belongs to.
	Journal string `json:"journal" yaml:"journal"`

	// DOI is the bare DOI (no https://doi.org/ prefix), when known.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the publication year. Zero means unknown; such records are
	// excluded from aggregation and counted as skipped.
	Year int `json:"year" yaml:"year"`

	// InvertedIndex is the raw abstract encoding from OpenAlex: each word
	// maps to the zero-based positions at which it occurs. Nil when the
	// work has no abstract.
	InvertedIndex map[string][]int `json:"inverted_index,omitempty" yaml:"inverted_index,omitempty"`

	// Abstract is the reconstructed plain-text abstract. Set once by the
	// tag stage; empty when no inverted index was present.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}
