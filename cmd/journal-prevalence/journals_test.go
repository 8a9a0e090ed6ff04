// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"testing"
)

func TestReadJournalList(t *testing.T) {
	csv := `journal_name,issn,rank
American Journal of Sociology,"0002-9602, 1537-5390",1
Social Forces,0037-7732,2
,,3
No ISSN Journal,,4
`
	entries, err := readJournalList(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("readJournalList() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3 (blank name skipped)", len(entries))
	}
	if entries[0].name != "American Journal of Sociology" || entries[0].issn != "0002-9602, 1537-5390" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[2].name != "No ISSN Journal" || entries[2].issn != "" {
		t.Errorf("entries[2] = %+v", entries[2])
	}
}

func TestReadJournalListColumnOrder(t *testing.T) {
	csv := "issn,journal_name\n0037-7732,Social Forces\n"
	entries, err := readJournalList(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("readJournalList() error = %v", err)
	}
	if entries[0].name != "Social Forces" || entries[0].issn != "0037-7732" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
}

func TestReadJournalListErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"missing columns", "name,number\nAJS,1\n"},
		{"no rows", "journal_name,issn\n"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readJournalList(strings.NewReader(tt.csv)); err == nil {
				t.Error("readJournalList() error = nil, want error")
			}
		})
	}
}
