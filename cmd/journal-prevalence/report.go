// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/journal-prevalence/internal/report"
	"github.com/pdiddy/journal-prevalence/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write yearly prevalence tables",
	Long: `Report aggregates tagged works into yearly keyword prevalence tables:
per (year, keyword) overall and per journal, with unique-article counts,
totals, and shares. Tables are written as CSV, JSON, and YAML with a
stable row order, plus a per-article keyword hits listing.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("output-dir", "", "directory for output tables (default: outputs)")
	reportCmd.Flags().String("patterns", "", "YAML keyword rules file (default: built-in table)")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	discipline, err := disciplineArg(cmd)
	if err != nil {
		return err
	}

	patterns, err := loadPatterns(cmd)
	if err != nil {
		return err
	}

	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	return report.Run(context.Background(), s, discipline, patterns, reportConfig(cmd), os.Stdout)
}
