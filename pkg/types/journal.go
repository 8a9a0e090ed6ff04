// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Journal holds the resolution of one input journal against OpenAlex.
// Unresolved journals are kept with Found=false so the resolution table
// records every input row.
type Journal struct {
	// Discipline is the label of the journal list this row came from
	// (e.g. "Sociology", "Political_Science").
	Discipline string `json:"discipline" yaml:"discipline"`

	// InputName is the journal name as given in the input list.
	InputName string `json:"input_name" yaml:"input_name"`

	// InputISSN is the raw ISSN field from the input list. May hold several
	// comma-separated ISSNs or be empty.
	InputISSN string `json:"input_issn,omitempty" yaml:"input_issn,omitempty"`

	// OpenAlexID is the resolved OpenAlex source ID (e.g.
	// "https://openalex.org/S123"). Empty when unresolved.
	OpenAlexID string `json:"openalex_id,omitempty" yaml:"openalex_id,omitempty"`

	// OpenAlexName is the display name of the resolved source.
	OpenAlexName string `json:"openalex_name,omitempty" yaml:"openalex_name,omitempty"`

	// MatchedISSN is the ISSN that produced the match, when ISSN lookup
	// succeeded. Empty for name-search matches.
	MatchedISSN string `json:"matched_issn,omitempty" yaml:"matched_issn,omitempty"`

	// Found reports whether the journal resolved to an OpenAlex source.
	Found bool `json:"found" yaml:"found"`
}
