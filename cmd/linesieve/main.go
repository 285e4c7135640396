package main

import (
	"log/slog"
	"os"

	"linesieve/internal/filter"

	"github.com/spf13/cobra"
)

func main() {
	config := DefaultConfig()

	rootCmd := newRootCmd(config)
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(config *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linesieve",
		Short: "Unix-style line filtering commands",
		Long: `linesieve provides a small set of line-oriented text filters: pattern
search, field extraction, sorting, and duplicate collapsing. Each command
reads lines from an input stream and writes transformed lines to an output
stream.

Examples:
  # Print lines matching a pattern, case-insensitively
  cat app.log | linesieve grep -i error

  # Extract the first and third tab-separated fields
  linesieve cut -f 0,2 --input data.tsv

  # Sort numerically in descending order
  linesieve sort -n -r --input sizes.txt

  # Count duplicate lines, most frequent first (works on compressed input)
  linesieve uniq -c --input access.log.gz`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadFromViper(cmd); err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}
			return setupLogging(config)
		},
	}

	// Setup shared flags from config
	config.SetupFlags(rootCmd)

	rootCmd.AddCommand(
		newGrepCmd(config),
		newCutCmd(config),
		newSortCmd(config),
		newUniqCmd(config),
	)

	return rootCmd
}

func newGrepCmd(config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grep PATTERN",
		Short: "Print lines matching a regular expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Grep.Pattern = args[0]
			f, err := filter.NewGrep(config.Grep)
			if err != nil {
				return err
			}
			return runFilter(config, "grep", f)
		},
	}
	cmd.Flags().BoolVarP(&config.Grep.IgnoreCase, "ignore-case", "i", config.Grep.IgnoreCase, "Ignore case distinctions in the pattern")
	cmd.Flags().BoolVarP(&config.Grep.Invert, "invert", "v", config.Grep.Invert, "Select lines that do not match")
	return cmd
}

func newCutCmd(config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cut",
		Short: "Extract delimiter-separated fields from each line",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.NewCut(config.Cut)
			if err != nil {
				return err
			}
			return runFilter(config, "cut", f)
		},
	}
	cmd.Flags().IntSliceVarP(&config.Cut.Fields, "fields", "f", config.Cut.Fields, "Zero-based field indices to extract (comma-separated, repeats allowed)")
	cmd.Flags().StringVarP(&config.Cut.Delimiter, "delimiter", "d", config.Cut.Delimiter, "Field delimiter")
	return cmd
}

func newSortCmd(config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort all input lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.NewSort(config.Sort)
			if err != nil {
				return err
			}
			return runFilter(config, "sort", f)
		},
	}
	cmd.Flags().BoolVarP(&config.Sort.Reverse, "reverse", "r", config.Sort.Reverse, "Sort in descending order")
	cmd.Flags().BoolVarP(&config.Sort.Numeric, "numeric", "n", config.Sort.Numeric, "Compare lines as numbers")
	return cmd
}

func newUniqCmd(config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uniq",
		Short: "Collapse duplicate lines, most frequent first",
		Long: `Collapse duplicate lines and print each distinct line once, ordered by
descending occurrence count. Unlike the traditional uniq, duplicates anywhere
in the stream are merged, not just consecutive ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.NewUniq(config.Uniq)
			if err != nil {
				return err
			}
			return runFilter(config, "uniq", f)
		},
	}
	cmd.Flags().BoolVarP(&config.Uniq.Count, "count", "c", config.Uniq.Count, "Prefix each line with its occurrence count")
	return cmd
}
