// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-prevalence/internal/openalex"
	"github.com/pdiddy/journal-prevalence/internal/store"
	"github.com/pdiddy/journal-prevalence/pkg/types"
)

const defaultFromYear = 2010

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch all works for the resolved journals from OpenAlex",
	Long: `Fetch pages through every OpenAlex work published since the start year
for each resolved journal in the discipline, storing raw metadata
(including the abstract inverted index) in the pipeline store. Pages are
persisted as they arrive, and re-running is idempotent.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Int("from-year", 0, fmt.Sprintf("earliest publication year (default %d)", defaultFromYear))

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	discipline, err := disciplineArg(cmd)
	if err != nil {
		return err
	}

	fromYear, _ := cmd.Flags().GetInt("from-year")
	if fromYear == 0 {
		fromYear = viper.GetInt("fetch.from_year")
	}
	if fromYear == 0 {
		fromYear = defaultFromYear
	}

	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	journals, err := s.Journals(ctx, discipline)
	if err != nil {
		return err
	}
	if len(journals) == 0 {
		return fmt.Errorf("no journals for discipline %q: run the journals stage first", discipline)
	}

	client := openalex.NewClient(openAlexConfig(), openalex.WithLogWriter(os.Stderr))

	grand := 0
	for _, j := range journals {
		if !j.Found {
			fmt.Fprintf(os.Stderr, "skipping unresolved journal: %s\n", j.InputName)
			continue
		}

		total, err := client.ListWorks(ctx, j.OpenAlexID, fromYear, discipline, j.InputName,
			func(page []types.Work) error {
				return s.UpsertWorks(ctx, page)
			})
		if err != nil {
			return fmt.Errorf("fetching works for %s: %w", j.InputName, err)
		}

		grand += total
		fmt.Printf("[OK] %s: %d works since %d\n", j.InputName, total, fromYear)
	}

	fmt.Printf("\nfetched %d works\n", grand)
	return nil
}
