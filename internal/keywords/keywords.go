// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords compiles keyword matching rules and evaluates them
// against article text. A rule is a regular expression plus an optional
// context clause: a secondary expression that must occur within a bounded
// word distance of the primary match. Several rules may share one clean
// label; matching is reported per label.
package keywords

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"go.yaml.in/yaml/v3"
)

// Rule is the raw, serializable form of one matching rule.
type Rule struct {
	// Label is the clean keyword label reported in output tables. Several
	// rules (spelling variants, acronym vs. phrase) may share a label.
	Label string `yaml:"label"`

	// Expr is the primary regular expression (RE2 syntax).
	Expr string `yaml:"expr"`

	// Near is an optional secondary expression. When set, a primary match
	// only counts if a Near match occurs within Window words of it.
	Near string `yaml:"near,omitempty"`

	// Window is the maximum word distance between the primary and Near
	// matches. Defaults to DefaultWindow when a Near clause is present.
	Window int `yaml:"window,omitempty"`

	// CaseSensitive disables the default case-insensitive matching.
	// Acronym rules (AI, GPT, BERT) set this so lowercase prose like
	// "air" or "bertrand" cannot produce hits.
	CaseSensitive bool `yaml:"case_sensitive,omitempty"`
}

// DefaultWindow is the word-distance window used by context rules that do
// not set one explicitly.
const DefaultWindow = 10

// Pattern is a compiled matching rule.
type Pattern struct {
	Label  string
	re     *regexp.Regexp
	near   *regexp.Regexp
	window int
}

// Compile compiles rules into patterns. Rules with an empty label or
// expression, or with an invalid regular expression, are rejected.
func Compile(rules []Rule) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(rules))
	for i, r := range rules {
		if r.Label == "" || r.Expr == "" {
			return nil, fmt.Errorf("rule %d: label and expr are required", i)
		}

		re, err := regexp.Compile(flagged(r.Expr, r.CaseSensitive))
		if err != nil {
			return nil, fmt.Errorf("rule %q: compiling %q: %w", r.Label, r.Expr, err)
		}

		p := Pattern{Label: r.Label, re: re}
		if r.Near != "" {
			near, err := regexp.Compile(flagged(r.Near, r.CaseSensitive))
			if err != nil {
				return nil, fmt.Errorf("rule %q: compiling near %q: %w", r.Label, r.Near, err)
			}
			p.near = near
			p.window = r.Window
			if p.window <= 0 {
				p.window = DefaultWindow
			}
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// flagged prepends the case-insensitivity flag unless the rule opts out.
func flagged(expr string, caseSensitive bool) string {
	if caseSensitive {
		return expr
	}
	return "(?i)" + expr
}

// Matches reports whether the pattern matches anywhere in text.
func (p Pattern) Matches(text string) bool {
	if text == "" {
		return false
	}
	if p.near == nil {
		return p.re.MatchString(text)
	}

	primary := p.re.FindAllStringIndex(text, -1)
	if len(primary) == 0 {
		return false
	}
	secondary := p.near.FindAllStringIndex(text, -1)
	if len(secondary) == 0 {
		return false
	}

	offsets := wordOffsets(text)
	for _, pm := range primary {
		pw := wordAt(offsets, pm[0])
		for _, sm := range secondary {
			sw := wordAt(offsets, sm[0])
			if abs(pw-sw) <= p.window {
				return true
			}
		}
	}
	return false
}

// MatchLabels returns the distinct labels whose patterns match text,
// sorted ascending.
func MatchLabels(patterns []Pattern, text string) []string {
	seen := make(map[string]bool)
	for _, p := range patterns {
		if seen[p.Label] {
			continue
		}
		if p.Matches(text) {
			seen[p.Label] = true
		}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Labels returns the distinct pattern labels, sorted ascending.
func Labels(patterns []Pattern) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, p := range patterns {
		if !seen[p.Label] {
			seen[p.Label] = true
			labels = append(labels, p.Label)
		}
	}
	sort.Strings(labels)
	return labels
}

// LoadRules reads a YAML file with a `rules:` list and compiles it.
func LoadRules(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patterns file: %w", err)
	}

	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing patterns file %s: %w", path, err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("patterns file %s contains no rules", path)
	}
	return Compile(doc.Rules)
}

// wordOffsets returns the starting byte offset of each word in text.
func wordOffsets(text string) []int {
	var offsets []int
	inWord := false
	for i, r := range text {
		space := r == ' ' || r == '\t' || r == '\n' || r == '\r'
		if !space && !inWord {
			offsets = append(offsets, i)
			inWord = true
		} else if space {
			inWord = false
		}
	}
	return offsets
}

// wordAt returns the index of the word containing byte offset pos.
func wordAt(offsets []int, pos int) int {
	i := sort.SearchInts(offsets, pos+1) - 1
	if i < 0 {
		return 0
	}
	return i
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
