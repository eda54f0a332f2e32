package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yacobolo/styledscan"
	"github.com/yacobolo/styledscan/internal/report"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "styledscan [root]",
		Short: "Count styled-components usage in a JS/TS source tree",
		Long: `Scan .js, .ts and .tsx files for styled.<element> and styled(<Component>)
and report how many native elements and custom components are restyled,
broken down by identifier. The root directory defaults to ./src.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE:          runScan,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := rootCmd.PersistentFlags()
	f.String("config", ".styledscan.yaml", "Config file path")
	f.BoolP("verbose", "v", false, "Enable debug logging on stderr")

	f = rootCmd.Flags()
	f.String("output-format", "text", "Output format: text|json|markdown")
	f.Bool("color", false, "Force color output")
	f.StringSlice("exclude", nil, "Glob patterns (relative to root) to skip")
	f.Bool("respect-gitignore", false, "Skip paths matched by the root .gitignore")
	f.Int("jobs", 0, "Max concurrent file reads (0=4 per CPU, -1=unbounded)")
	f.Bool("list-matches", false, "List every match as file:line:col before the summary")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "styledscan",
		Level:  level,
	})
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := newLogger(boolOr("verbose", false))
	config := buildScanConfig(args, logger)

	format, err := styledscan.DetermineOutputFormat(stringOr("output-format", "text"))
	if err != nil {
		return err
	}

	logger.Debug("scanning",
		"root", config.Root,
		"exclude", config.Exclude,
		"gitignore", config.RespectGitignore,
		"jobs", config.Jobs)

	result, err := styledscan.Scan(cmd.Context(), config)
	if err != nil {
		return err
	}

	useColors := report.ShouldUseColors(boolOr("color", false))
	if err := styledscan.WriteOutput(cmd.OutOrStdout(), result, format, useColors); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
