// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "journal-prevalence/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OpenAlexConfig holds settings for the OpenAlex API client used by the
// journals and fetch stages.
type OpenAlexConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is sent as the mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// RateLimit is the maximum request rate in requests per second (default 10).
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// PerPage is the page size for works pagination (default 200, max 200).
	PerPage int `json:"per_page" yaml:"per_page"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	// FromYear is the earliest publication year retrieved (default 2010).
	FromYear int `json:"from_year" yaml:"from_year"`
}

// StoreConfig holds settings for the pipeline SQLite store.
type StoreConfig struct {
	// DataDir is the directory containing the pipeline database (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// TagConfig holds settings for the tagging stage.
type TagConfig struct {
	// PatternsFile is an optional YAML file of keyword patterns. When empty
	// the built-in pattern table is used.
	PatternsFile string `json:"patterns_file,omitempty" yaml:"patterns_file,omitempty"`
}

// ReportConfig holds settings for the report stage.
type ReportConfig struct {
	// OutputDir is the directory for prevalence tables (default "outputs").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	OpenAlex OpenAlexConfig `json:"openalex" yaml:"openalex"`
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	Store    StoreConfig    `json:"store" yaml:"store"`
	Tag      TagConfig      `json:"tag" yaml:"tag"`
	Report   ReportConfig   `json:"report" yaml:"report"`
}
