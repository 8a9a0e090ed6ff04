// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-prevalence/internal/keywords"
	"github.com/pdiddy/journal-prevalence/internal/store"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Reconstruct abstracts and match keyword patterns",
	Long: `Tag reconstructs the abstract of every fetched work from its inverted
index, matches the keyword patterns against title and abstract, and
stores the per-article hits. Malformed indexes are reported as warnings
and resolved last-write-wins; they never abort the run.

Patterns default to the built-in AI/NLP table; use --patterns to load a
YAML rules file instead.`,
	RunE: runTag,
}

func init() {
	tagCmd.Flags().String("patterns", "", "YAML keyword rules file (default: built-in table)")

	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
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

	_, err = s.Tag(context.Background(), discipline, patterns, os.Stdout)
	return err
}

// loadPatterns resolves the pattern set: --patterns flag, then the
// tag.patterns_file config key, then the built-in table.
func loadPatterns(cmd *cobra.Command) ([]keywords.Pattern, error) {
	path, _ := cmd.Flags().GetString("patterns")
	if path == "" {
		path = viper.GetString("tag.patterns_file")
	}
	if path == "" {
		return keywords.DefaultPatterns(), nil
	}
	return keywords.LoadRules(path)
}
