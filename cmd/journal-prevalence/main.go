// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the journal-prevalence CLI, a
// staged pipeline that measures keyword prevalence in journal abstracts.
// Each stage is a subcommand over a shared SQLite store: journals resolves
// an input journal list against OpenAlex, fetch retrieves work metadata,
// tag reconstructs abstracts and matches keyword patterns, and report
// writes yearly prevalence tables.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-prevalence/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the journal-prevalence CLI.
var rootCmd = &cobra.Command{
	Use:   "journal-prevalence",
	Short: "Keyword prevalence statistics for academic journals",
	Long: `journal-prevalence measures how often AI/NLP keywords appear in the
abstracts of articles published by a curated journal list, per year.

The pipeline runs in stages, each a subcommand sharing a SQLite store:
journals resolves the input list against OpenAlex, fetch retrieves all
work metadata since the start year, tag reconstructs abstracts from the
inverted-index encoding and matches keyword patterns, and report writes
yearly prevalence tables as CSV, JSON, and YAML.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./journal-prevalence.yaml or ~/.config/journal-prevalence/config.yaml)")
	rootCmd.PersistentFlags().String("discipline", "", "journal list label to operate on (e.g. Sociology)")
	rootCmd.PersistentFlags().String("data-dir", "", "pipeline database directory (default: data)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("journal-prevalence")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "journal-prevalence"))
		}
	}

	viper.SetEnvPrefix("JOURNAL_PREVALENCE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
