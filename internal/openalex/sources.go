// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"net/url"
	"strings"
)

// Resolution is the outcome of matching one input journal against the
// OpenAlex sources endpoint.
type Resolution struct {
	ID          string
	DisplayName string
	MatchedISSN string
	Found       bool
}

// ResolveSource finds the OpenAlex source for a journal. Each ISSN in the
// comma-separated issnField is tried as a filter first; when none match,
// the journal name is tried as a search query. An unmatched journal is a
// Found=false result, not an error.
func (c *Client) ResolveSource(ctx context.Context, name, issnField string) (Resolution, error) {
	for _, issn := range splitISSNs(issnField) {
		var sr sourcesResponse
		params := url.Values{"filter": {"issn:" + issn}, "per_page": {"1"}}
		if err := c.getJSON(ctx, "/sources", params, &sr); err != nil {
			return Resolution{}, err
		}
		if len(sr.Results) > 0 {
			best := sr.Results[0]
			return Resolution{
				ID:          best.ID,
				DisplayName: best.DisplayName,
				MatchedISSN: issn,
				Found:       true,
			}, nil
		}
	}

	if name != "" {
		var sr sourcesResponse
		params := url.Values{"search": {name}, "per_page": {"1"}}
		if err := c.getJSON(ctx, "/sources", params, &sr); err != nil {
			return Resolution{}, err
		}
		if len(sr.Results) > 0 {
			best := sr.Results[0]
			res := Resolution{
				ID:          best.ID,
				DisplayName: best.DisplayName,
				Found:       true,
			}
			if best.ISSNL != "" {
				res.MatchedISSN = best.ISSNL
			} else if len(best.ISSN) > 0 {
				res.MatchedISSN = best.ISSN[0]
			}
			return res, nil
		}
	}

	return Resolution{}, nil
}

// splitISSNs splits a comma-separated ISSN field, dropping blanks.
func splitISSNs(field string) []string {
	var issns []string
	for _, part := range strings.Split(field, ",") {
		if issn := strings.TrimSpace(part); issn != "" {
			issns = append(issns, issn)
		}
	}
	return issns
}

// OpenAlex sources endpoint JSON structures.
type sourcesResponse struct {
	Meta    openAlexMeta     `json:"meta"`
	Results []openAlexSource `json:"results"`
}

type openAlexSource struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	ISSNL       string   `json:"issn_l"`
	ISSN        []string `json:"issn"`
}
