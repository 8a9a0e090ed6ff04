// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-prevalence/pkg/types"
)

const defaultUserAgent = "journal-prevalence/0.1"

// disciplineArg returns the required discipline label from the flag or
// config file.
func disciplineArg(cmd *cobra.Command) (string, error) {
	discipline, _ := cmd.Flags().GetString("discipline")
	if discipline == "" {
		discipline = viper.GetString("discipline")
	}
	if discipline == "" {
		return "", fmt.Errorf("discipline is required: pass --discipline or set it in the config file")
	}
	return discipline, nil
}

// storeConfig builds the store settings from flags and config.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("store.data_dir")
	}
	return types.StoreConfig{DataDir: dataDir}
}

// openAlexConfig builds the API client settings. The polite-pool email
// comes from config or the openalex-email secret.
func openAlexConfig() types.OpenAlexConfig {
	cfg := types.OpenAlexConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("openalex.timeout"),
			UserAgent: viper.GetString("openalex.user_agent"),
		},
		Email:      loadedSecrets.Get("openalex-email", viper.GetString("openalex.email")),
		RateLimit:  viper.GetFloat64("openalex.rate_limit"),
		PerPage:    viper.GetInt("openalex.per_page"),
		MaxRetries: viper.GetInt("openalex.max_retries"),
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return cfg
}

// reportConfig builds the report settings from flags and config.
func reportConfig(cmd *cobra.Command) types.ReportConfig {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("report.output_dir")
	}
	return types.ReportConfig{OutputDir: outputDir}
}
