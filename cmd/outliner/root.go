package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/batch"
	"github.com/tsawler/outliner/outline"
)

var (
	inputDir   string
	outputDir  string
	configPath string
	workers    int
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Extract titled heading outlines from PDF documents",
	Long: `Outliner reads digitally-authored PDF files and writes one JSON file per
document containing the document title and a hierarchical outline of its
headings (H1-H3) with 1-indexed page numbers.

Classification is rule-based: font-size statistics, numbering patterns,
styling, and page position. No network access and no external services.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		engine, err := outline.NewEngineWithConfig(cfg)
		if err != nil {
			return err
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		runner := batch.NewRunner(engine, log, workers, timeout)
		summary, err := runner.Run(cmd.Context(), inputDir, outputDir)
		if err != nil {
			return err
		}

		FormatSummary(cmd.OutOrStdout(), summary)
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d documents failed", summary.Failed, summary.Total)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "input", "Directory containing PDF files")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "Directory for JSON outline files")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Optional YAML config file for engine tuning")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", batch.DefaultWorkers, "Number of documents processed concurrently")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", batch.DefaultTimeout, "Per-document processing deadline")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads engine settings from an optional YAML file. An empty
// path yields the defaults; a present but unreadable or invalid file is
// an error, never a silent fallback.
func loadConfig(path string) (outline.Config, error) {
	if path == "" {
		return outline.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return outline.Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg outline.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return outline.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
