package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"WikiCollector/internal/app"
	"WikiCollector/internal/config"
	"WikiCollector/internal/logging"
)

var (
	configFile string
	logLevel   string
	delayMs    int
	year       int
)

var rootCmd = &cobra.Command{
	Use:   "wikicollector <input-file|list-url> [output-file]",
	Short: "Collects dates and English pageviews for Hebrew Wikipedia articles",
	Long: `Resolves each Hebrew Wikipedia article title to its Wikidata item,
extracts start/end dates and the English sitelink title, sums the English
article's pageviews for the year, and writes a single JSON snapshot.

The input is a text file with one title per line, or the URL of a wiki
list/category page to scrape titles from.`,
	Example: `  wikicollector input.txt
  wikicollector input.txt results.json
  wikicollector "https://he.wikipedia.org/wiki/קטגוריה:מלחמות" output.json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Argument errors above still print usage; runtime failures are
		// reported through the logger only.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		cfg := config.Load(configFile)
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if delayMs >= 0 {
			cfg.Pipeline.DelayMs = delayMs
		}
		if year > 0 {
			cfg.Pipeline.Year = year
		}

		output := "output.json"
		if len(args) > 1 {
			output = args[1]
		}

		logger := logging.New(cfg.Logging.Level)
		application := app.New(cfg, logger)

		if err := application.Run(context.Background(), args[0], output); err != nil {
			logger.Error("collection stopped", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to YAML configuration file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Diagnostic verbosity (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&delayMs, "delay", -1, "Pause between titles in milliseconds")
	rootCmd.Flags().IntVar(&year, "year", 0, "Pageviews year (defaults to the current year)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
