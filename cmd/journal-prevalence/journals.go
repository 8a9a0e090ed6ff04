// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/journal-prevalence/internal/openalex"
	"github.com/pdiddy/journal-prevalence/internal/store"
	"github.com/pdiddy/journal-prevalence/pkg/types"
)

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "Resolve an input journal list against OpenAlex",
	Long: `Journals reads a CSV journal list with journal_name and issn columns,
resolves each journal to an OpenAlex source (ISSN lookup first, name
search as fallback), and records the resolution table in the pipeline
store. Unresolved journals are kept with a warning so the input list
stays auditable.`,
	RunE: runJournals,
}

func init() {
	journalsCmd.Flags().String("input", "", "CSV file with journal_name and issn columns (required)")
	journalsCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(journalsCmd)
}

func runJournals(cmd *cobra.Command, args []string) error {
	discipline, err := disciplineArg(cmd)
	if err != nil {
		return err
	}
	inputPath, _ := cmd.Flags().GetString("input")

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening journal list: %w", err)
	}
	defer f.Close()

	entries, err := readJournalList(f)
	if err != nil {
		return fmt.Errorf("reading journal list %s: %w", inputPath, err)
	}

	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	client := openalex.NewClient(openAlexConfig(), openalex.WithLogWriter(os.Stderr))
	ctx := context.Background()

	found := 0
	for _, entry := range entries {
		res, err := client.ResolveSource(ctx, entry.name, entry.issn)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", entry.name, err)
		}

		j := types.Journal{
			Discipline:   discipline,
			InputName:    entry.name,
			InputISSN:    entry.issn,
			OpenAlexID:   res.ID,
			OpenAlexName: res.DisplayName,
			MatchedISSN:  res.MatchedISSN,
			Found:        res.Found,
		}
		if err := s.UpsertJournal(ctx, j); err != nil {
			return err
		}

		if res.Found {
			found++
			fmt.Printf("[OK] %s -> %s\n", entry.name, res.ID)
		} else {
			fmt.Fprintf(os.Stderr, "[WARNING] journal not found in OpenAlex: %s\n", entry.name)
		}
	}

	fmt.Printf("\nresolved %d of %d journals\n", found, len(entries))
	return nil
}

type journalEntry struct {
	name string
	issn string
}

// readJournalList parses a CSV with a header row naming journal_name and
// issn columns (any order, extra columns ignored). Rows with an empty
// name are skipped.
func readJournalList(r io.Reader) ([]journalEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	nameCol, issnCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "journal_name":
			nameCol = i
		case "issn":
			issnCol = i
		}
	}
	if nameCol < 0 || issnCol < 0 {
		return nil, fmt.Errorf("expected journal_name and issn columns, found %v", header)
	}

	var entries []journalEntry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		name := strings.TrimSpace(record[nameCol])
		if name == "" {
			continue
		}
		entries = append(entries, journalEntry{
			name: name,
			issn: strings.TrimSpace(record[issnCol]),
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("journal list contains no rows")
	}
	return entries, nil
}
