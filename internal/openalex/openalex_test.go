// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/journal-prevalence/pkg/types"
)

func testClient(ts *httptest.Server, cfg types.OpenAlexConfig) *Client {
	// A high limit keeps tests free of limiter waits.
	cfg.RateLimit = 10000
	return NewClient(cfg, WithBaseURL(ts.URL), WithHTTPClient(ts.Client()))
}

func TestSplitISSNs(t *testing.T) {
	tests := []struct {
		field string
		want  []string
	}{
		{"", nil},
		{"0002-9602", []string{"0002-9602"}},
		{"0002-9602, 1537-5390", []string{"0002-9602", "1537-5390"}},
		{" , ,0002-9602", []string{"0002-9602"}},
	}
	for _, tt := range tests {
		if got := splitISSNs(tt.field); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitISSNs(%q) = %v, want %v", tt.field, got, tt.want)
		}
	}
}

func TestResolveSourceByISSN(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sources" {
			t.Errorf("path = %q, want /sources", r.URL.Path)
		}
		if got := r.URL.Query().Get("mailto"); got != "team@example.org" {
			t.Errorf("mailto = %q", got)
		}
		switch r.URL.Query().Get("filter") {
		case "issn:0000-0000":
			fmt.Fprint(w, `{"meta":{"count":0},"results":[]}`)
		case "issn:0002-9602":
			fmt.Fprint(w, `{"meta":{"count":1},"results":[
				{"id":"https://openalex.org/S123","display_name":"American Journal of Sociology","issn_l":"0002-9602"}]}`)
		default:
			t.Errorf("unexpected filter %q", r.URL.Query().Get("filter"))
		}
	}))
	defer ts.Close()

	c := testClient(ts, types.OpenAlexConfig{Email: "team@example.org"})

	// First ISSN misses, second matches; name search never runs.
	res, err := c.ResolveSource(context.Background(), "American Journal of Sociology", "0000-0000, 0002-9602")
	if err != nil {
		t.Fatalf("ResolveSource() error = %v", err)
	}
	want := Resolution{
		ID:          "https://openalex.org/S123",
		DisplayName: "American Journal of Sociology",
		MatchedISSN: "0002-9602",
		Found:       true,
	}
	if res != want {
		t.Errorf("ResolveSource() = %+v, want %+v", res, want)
	}
}

func TestResolveSourceFallsBackToName(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("filter") != "" {
			fmt.Fprint(w, `{"meta":{"count":0},"results":[]}`)
			return
		}
		if q.Get("search") != "Social Forces" {
			t.Errorf("search = %q", q.Get("search"))
		}
		fmt.Fprint(w, `{"meta":{"count":1},"results":[
			{"id":"https://openalex.org/S456","display_name":"Social Forces","issn":["0037-7732"]}]}`)
	}))
	defer ts.Close()

	c := testClient(ts, types.OpenAlexConfig{})

	res, err := c.ResolveSource(context.Background(), "Social Forces", "9999-9999")
	if err != nil {
		t.Fatalf("ResolveSource() error = %v", err)
	}
	if !res.Found || res.ID != "https://openalex.org/S456" || res.MatchedISSN != "0037-7732" {
		t.Errorf("ResolveSource() = %+v", res)
	}
}

func TestResolveSourceNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"meta":{"count":0},"results":[]}`)
	}))
	defer ts.Close()

	c := testClient(ts, types.OpenAlexConfig{})

	res, err := c.ResolveSource(context.Background(), "Ghost Journal", "")
	if err != nil {
		t.Fatalf("ResolveSource() error = %v", err)
	}
	if res.Found {
		t.Errorf("ResolveSource() = %+v, want not found", res)
	}
}

func TestResolveSourceHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := testClient(ts, types.OpenAlexConfig{})

	if _, err := c.ResolveSource(context.Background(), "Any", "0002-9602"); err == nil {
		t.Error("ResolveSource() error = nil, want HTTP error")
	}
}

const worksPage1 = `{
  "meta": {"count": 3, "per_page": 2, "next_cursor": "CURSOR2"},
  "results": [
    {
      "id": "https://openalex.org/W1",
      "title": "Machine learning in survey research",
      "doi": "https://doi.org/10.1000/w1",
      "publication_year": 2019,
      "authorships": [
        {"author": {"id": "A1", "display_name": "Ada Lovelace"}},
        {"author": {"id": "A2", "display_name": ""}}
      ],
      "abstract_inverted_index": {"machine": [0], "learning": [1]}
    },
    {
      "id": "https://openalex.org/W2",
      "title": "Field notes",
      "publication_year": 2020
    }
  ]
}`

const worksPage2 = `{
  "meta": {"count": 3, "per_page": 2, "next_cursor": ""},
  "results": [
    {
      "id": "https://openalex.org/W3",
      "title": "Transformers and sociology",
      "publication_year": 2021
    }
  ]
}`

func TestListWorksPaginates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if !strings.Contains(q.Get("filter"), "locations.source.id:S123") {
			t.Errorf("filter = %q", q.Get("filter"))
		}
		if !strings.Contains(q.Get("filter"), "from_publication_date:2010-01-01") {
			t.Errorf("filter = %q", q.Get("filter"))
		}
		switch q.Get("cursor") {
		case "*":
			fmt.Fprint(w, worksPage1)
		case "CURSOR2":
			fmt.Fprint(w, worksPage2)
		default:
			t.Errorf("unexpected cursor %q", q.Get("cursor"))
		}
	}))
	defer ts.Close()

	c := testClient(ts, types.OpenAlexConfig{})

	var all []types.Work
	total, err := c.ListWorks(context.Background(), "S123", 2010, "Sociology", "AJS", func(page []types.Work) error {
		all = append(all, page...)
		return nil
	})
	if err != nil {
		t.Fatalf("ListWorks() error = %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("total = %d, len(all) = %d, want 3", total, len(all))
	}

	first := all[0]
	if first.ID != "W1" {
		t.Errorf("ID = %q, want W1 (prefix stripped)", first.ID)
	}
	if first.DOI != "10.1000/w1" {
		t.Errorf("DOI = %q, want bare DOI", first.DOI)
	}
	if first.Discipline != "Sociology" || first.Journal != "AJS" {
		t.Errorf("labels = %q/%q", first.Discipline, first.Journal)
	}
	if !reflect.DeepEqual(first.Authors, []string{"Ada Lovelace"}) {
		t.Errorf("Authors = %v", first.Authors)
	}
	if !reflect.DeepEqual(first.InvertedIndex, map[string][]int{"machine": {0}, "learning": {1}}) {
		t.Errorf("InvertedIndex = %v", first.InvertedIndex)
	}
	if all[1].InvertedIndex != nil {
		t.Errorf("work without abstract should have nil index")
	}
}

func TestListWorksCallbackErrorStops(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		fmt.Fprint(w, worksPage1)
	}))
	defer ts.Close()

	c := testClient(ts, types.OpenAlexConfig{})

	_, err := c.ListWorks(context.Background(), "S123", 2010, "", "", func([]types.Work) error {
		return fmt.Errorf("stop")
	})
	if err == nil || err.Error() != "stop" {
		t.Errorf("ListWorks() error = %v, want stop", err)
	}
	if calls != 1 {
		t.Errorf("server calls = %d, want 1", calls)
	}
}

func TestToWorkIdentifierPreference(t *testing.T) {
	tests := []struct {
		name string
		work openAlexWork
		want string
	}{
		{"work id", openAlexWork{ID: "https://openalex.org/W9", DOI: "https://doi.org/10.1/x", Title: "T"}, "W9"},
		{"doi", openAlexWork{DOI: "https://doi.org/10.1/x", Title: "T"}, "10.1/x"},
		{"title", openAlexWork{Title: "T"}, "T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.work.toWork("", "").ID; got != tt.want {
				t.Errorf("toWork().ID = %q, want %q", got, tt.want)
			}
		})
	}
}
