// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report computes the prevalence tables for a discipline and
// writes them as CSV, JSON, and YAML files. Output rows carry a stable
// order so files diff cleanly across runs on unchanged input.
package report

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/journal-prevalence/internal/keywords"
	"github.com/pdiddy/journal-prevalence/internal/prevalence"
	"github.com/pdiddy/journal-prevalence/internal/store"
	"github.com/pdiddy/journal-prevalence/pkg/types"
)

// Run builds the overall and per-journal prevalence tables plus the
// keyword-hits listing for discipline and writes them under
// cfg.OutputDir. Progress goes to w.
func Run(ctx context.Context, s *store.Store, discipline string, patterns []keywords.Pattern, cfg types.ReportConfig, w io.Writer) error {
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "outputs"
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	works, err := s.Works(ctx, discipline)
	if err != nil {
		return err
	}

	overall := prevalence.Aggregate(works, patterns)
	byJournal := prevalence.ByJournal(works, patterns)

	fmt.Fprintf(w, "articles: %d, duplicates dropped: %d, skipped (no year): %d\n",
		overall.Articles, overall.Duplicates, overall.Skipped)

	base := filepath.Join(outputDir, "prevalence_"+discipline)
	if err := writeStatsCSV(base+".csv", overall.Stats, false); err != nil {
		return err
	}
	if err := writeJSON(base+".json", overall.Stats); err != nil {
		return err
	}
	if err := writeYAML(base+".yaml", overall.Stats); err != nil {
		return err
	}

	journalPath := filepath.Join(outputDir, "journal_prevalence_"+discipline+".csv")
	if err := writeStatsCSV(journalPath, byJournal.Stats, true); err != nil {
		return err
	}

	hits, err := s.Hits(ctx, discipline)
	if err != nil {
		return err
	}
	hitsPath := filepath.Join(outputDir, "keyword_hits_"+discipline+".csv")
	if err := writeHitsCSV(hitsPath, hits); err != nil {
		return err
	}

	fmt.Fprintf(w, "wrote %s.{csv,json,yaml}, %s, %s\n", base, journalPath, hitsPath)
	return nil
}

func writeStatsCSV(path string, stats []types.YearlyStat, withJournal bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{"year", "keyword", "matched", "total", "share", "percentage"}
	if withJournal {
		header = append([]string{"journal"}, header...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	for _, s := range stats {
		row := []string{
			strconv.Itoa(s.Year),
			s.Keyword,
			strconv.Itoa(s.Matched),
			strconv.Itoa(s.Total),
			strconv.FormatFloat(s.Share, 'f', 6, 64),
			strconv.FormatFloat(s.Percentage, 'f', 4, 64),
		}
		if withJournal {
			row = append([]string{s.Journal}, row...)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeHitsCSV(path string, hits []store.Hit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"keyword", "journal", "year", "work_id", "doi", "title"}); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, h := range hits {
		row := []string{h.Keyword, h.Journal, strconv.Itoa(h.Year), h.WorkID, h.DOI, h.Title}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(path string, stats []types.YearlyStat) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeYAML(path string, stats []types.YearlyStat) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
