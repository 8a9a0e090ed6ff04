// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prevalence computes yearly keyword prevalence over article
// records: for each publication year and keyword label, the number of
// distinct matching articles and its share of all distinct articles that
// year. Pure in-memory computation; identical input yields byte-identical
// ordered output.
package prevalence

import (
	"sort"

	"github.com/pdiddy/journal-prevalence/internal/keywords"
	"github.com/pdiddy/journal-prevalence/pkg/types"
)

// Result holds the prevalence table plus bookkeeping counts.
type Result struct {
	// Stats has one row per (year, keyword label) pair, for every year
	// present in the input and every label in the pattern set, sorted by
	// year ascending then label ascending. Zero-match rows are kept so the
	// table shape is stable across runs.
	Stats []types.YearlyStat

	// Articles is the number of distinct article identifiers aggregated.
	Articles int

	// Duplicates is the number of input records dropped as repeat
	// identifiers.
	Duplicates int

	// Skipped is the number of records excluded for missing a publication
	// year.
	Skipped int
}

// Aggregate computes the prevalence table for works against patterns.
// A pattern matches a work when it matches the concatenation of title and
// reconstructed abstract. Records are deduplicated by identifier first,
// so an article appearing on several upstream pages contributes once.
// Records without a year are excluded and counted in Result.Skipped.
// Empty works or patterns yield an empty table, not an error.
func Aggregate(works []types.Work, patterns []keywords.Pattern) Result {
	var res Result

	unique := dedupe(works, &res)

	// year → set of distinct IDs; (year, label) → set of matching IDs.
	totals := make(map[int]map[string]bool)
	matched := make(map[int]map[string]map[string]bool)

	for _, w := range unique {
		if w.Year == 0 {
			res.Skipped++
			continue
		}

		if totals[w.Year] == nil {
			totals[w.Year] = make(map[string]bool)
			matched[w.Year] = make(map[string]map[string]bool)
		}
		totals[w.Year][w.ID] = true
		res.Articles++

		text := w.Title
		if w.Abstract != "" {
			text += " " + w.Abstract
		}
		for _, label := range keywords.MatchLabels(patterns, text) {
			if matched[w.Year][label] == nil {
				matched[w.Year][label] = make(map[string]bool)
			}
			matched[w.Year][label][w.ID] = true
		}
	}

	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	labels := keywords.Labels(patterns)

	for _, y := range years {
		total := len(totals[y])
		for _, label := range labels {
			count := len(matched[y][label])
			share := 0.0
			if total > 0 {
				share = float64(count) / float64(total)
			}
			res.Stats = append(res.Stats, types.YearlyStat{
				Year:       y,
				Keyword:    label,
				Matched:    count,
				Total:      total,
				Share:      share,
				Percentage: share * 100,
			})
		}
	}

	return res
}

// ByJournal partitions works by journal label, aggregates each partition,
// and returns the combined table sorted by journal, year, keyword.
func ByJournal(works []types.Work, patterns []keywords.Pattern) Result {
	byJournal := make(map[string][]types.Work)
	for _, w := range works {
		byJournal[w.Journal] = append(byJournal[w.Journal], w)
	}

	journals := make([]string, 0, len(byJournal))
	for j := range byJournal {
		journals = append(journals, j)
	}
	sort.Strings(journals)

	var res Result
	for _, j := range journals {
		part := Aggregate(byJournal[j], patterns)
		for i := range part.Stats {
			part.Stats[i].Journal = j
		}
		res.Stats = append(res.Stats, part.Stats...)
		res.Articles += part.Articles
		res.Duplicates += part.Duplicates
		res.Skipped += part.Skipped
	}
	return res
}

// dedupe keeps the first record per identifier. A later duplicate may fill
// in an abstract the kept record lacks; upstream pages have been seen to
// carry the index on only some copies.
func dedupe(works []types.Work, res *Result) []types.Work {
	seen := make(map[string]int)
	var unique []types.Work
	for _, w := range works {
		if idx, ok := seen[w.ID]; ok {
			res.Duplicates++
			if unique[idx].Abstract == "" && w.Abstract != "" {
				unique[idx].Abstract = w.Abstract
			}
			continue
		}
		seen[w.ID] = len(unique)
		unique = append(unique, w)
	}
	return unique
}
