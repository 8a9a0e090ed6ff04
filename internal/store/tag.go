// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/journal-prevalence/internal/abstract"
	"github.com/pdiddy/journal-prevalence/internal/keywords"
)

// TagSummary holds counts from one tagging run.
type TagSummary struct {
	Tagged     int
	NoAbstract int
	Anomalies  int
	Hits       int
}

// Total returns the number of works processed.
func (t TagSummary) Total() int {
	return t.Tagged + t.NoAbstract
}

// Tag reconstructs the abstract of every untagged work in the discipline,
// matches the keyword patterns against title and abstract, and persists
// the results. Index anomalies (position collisions, negative positions)
// are reported as warnings on w and counted; they never abort the run.
// Works without an inverted index are tagged with an empty abstract so the
// title still participates in matching.
func (s *Store) Tag(ctx context.Context, discipline string, patterns []keywords.Pattern, w io.Writer) (TagSummary, error) {
	works, err := s.UntaggedWorks(ctx, discipline)
	if err != nil {
		return TagSummary{}, err
	}

	var summary TagSummary
	for _, work := range works {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		text, anomalies := abstract.Reconstruct(work.InvertedIndex)
		if anomalies > 0 {
			summary.Anomalies += anomalies
			fmt.Fprintf(w, "warning: %s: %d inverted-index anomalies, kept last assignment\n", work.ID, anomalies)
		}
		if text == "" {
			summary.NoAbstract++
		} else {
			summary.Tagged++
		}

		matchText := work.Title
		if text != "" {
			matchText += " " + text
		}
		labels := keywords.MatchLabels(patterns, matchText)
		summary.Hits += len(labels)

		if err := s.SetTagged(ctx, discipline, work.ID, text, labels); err != nil {
			return summary, err
		}
	}

	fmt.Fprintf(w, "tagged: %d, no abstract: %d, hits: %d, index anomalies: %d\n",
		summary.Tagged, summary.NoAbstract, summary.Hits, summary.Anomalies)
	return summary, nil
}
