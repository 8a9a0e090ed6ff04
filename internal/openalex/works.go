// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/journal-prevalence/pkg/types"
)

// ListWorks pages through every work hosted by sourceID and published in
// fromYear or later, using cursor pagination. Each page is converted to
// Work records labelled with discipline and journal and handed to fn;
// a non-nil fn error stops pagination. Returns the number of works seen.
func (c *Client) ListWorks(ctx context.Context, sourceID string, fromYear int, discipline, journal string, fn func([]types.Work) error) (int, error) {
	params := url.Values{
		"filter": {fmt.Sprintf(
			"locations.source.id:%s,from_publication_date:%d-01-01",
			sourceID, fromYear,
		)},
		"per_page": {fmt.Sprintf("%d", c.perPage)},
		"cursor":   {"*"},
	}

	total := 0
	for {
		var wr worksResponse
		if err := c.getJSON(ctx, "/works", params, &wr); err != nil {
			return total, err
		}
		if len(wr.Results) == 0 {
			return total, nil
		}

		page := make([]types.Work, 0, len(wr.Results))
		for _, raw := range wr.Results {
			page = append(page, raw.toWork(discipline, journal))
		}
		total += len(page)

		if err := fn(page); err != nil {
			return total, err
		}

		if wr.Meta.NextCursor == "" {
			return total, nil
		}
		params.Set("cursor", wr.Meta.NextCursor)
	}
}

// toWork converts a raw OpenAlex work into the pipeline record. The
// identifier preference is work ID, then DOI, then title, so every record
// has a dedup key.
func (w openAlexWork) toWork(discipline, journal string) types.Work {
	rec := types.Work{
		Discipline:    discipline,
		Journal:       journal,
		Title:         w.Title,
		Year:          w.PublicationYear,
		InvertedIndex: w.AbstractInvertedIndex,
	}

	if w.DOI != "" {
		rec.DOI = strings.TrimPrefix(w.DOI, "https://doi.org/")
	}

	switch {
	case w.ID != "":
		rec.ID = strings.TrimPrefix(w.ID, "https://openalex.org/")
	case rec.DOI != "":
		rec.ID = rec.DOI
	default:
		rec.ID = w.Title
	}

	for _, authorship := range w.Authorships {
		if authorship.Author.DisplayName != "" {
			rec.Authors = append(rec.Authors, authorship.Author.DisplayName)
		}
	}

	return rec
}

// OpenAlex works endpoint JSON structures.
type worksResponse struct {
	Meta    openAlexMeta   `json:"meta"`
	Results []openAlexWork `json:"results"`
}

type openAlexMeta struct {
	Count      int    `json:"count"`
	PerPage    int    `json:"per_page"`
	NextCursor string `json:"next_cursor"`
}

type openAlexWork struct {
	ID                    string               `json:"id"`
	Title                 string               `json:"title"`
	DOI                   string               `json:"doi"`
	PublicationYear       int                  `json:"publication_year"`
	Authorships           []openAlexAuthorship `json:"authorships"`
	AbstractInvertedIndex map[string][]int     `json:"abstract_inverted_index"`
}

type openAlexAuthorship struct {
	Author openAlexAuthor `json:"author"`
}

type openAlexAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
