package main

import (
	"fmt"

	csstw "github.com/jsdev/css-to-tailwind-classes"
	"github.com/jsdev/css-to-tailwind-classes/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var convertCmd = &cobra.Command{
	Use:     "convert [patterns...]",
	Aliases: []string{"conv"},
	Short:   "Convert CSS files into Tailwind classes",
	Long: `Convert every rule of the matched CSS files into Tailwind utility classes.
Patterns are files, directories or globs with ** support (web/**/*.css).
Gitignored and *.min.css files are skipped. Use - or --stdin to read
standard input instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runConvert,
}

// runConvert is shared between `css2tw convert` and bare `css2tw`.
func runConvert(cmd *cobra.Command, args []string) error {
	logger := loggerFor(cmd)
	defer func() { _ = logger.Sync() }()

	format, err := outputFormat("convert.output-format", report.OutputClasses)
	if err != nil {
		return err
	}

	rep, convErr := convertInputs(cmd, args, logger)
	if rep == nil {
		return convErr
	}

	if err := writeReport(cmd, rep, format); err != nil {
		return err
	}
	if convErr != nil {
		return &silentError{err: convErr}
	}
	return nil
}

// convertInputs converts standard input or the files matched by args. Files
// that cannot be read are logged and their errors are returned together
// with the report of the others.
func convertInputs(cmd *cobra.Command, args []string, logger *zap.Logger) (*report.Report, error) {
	config, err := buildConvertConfig(args, logger)
	if err != nil {
		return nil, err
	}

	if readsStdin(args) {
		logger.Debug("reading standard input")
		return csstw.ConvertReader(cmd.InOrStdin(), report.StdinName, config)
	}

	rep, err := csstw.ConvertFiles(config)
	if rep == nil {
		return nil, err
	}
	for _, e := range multierr.Errors(err) {
		logger.Error("file skipped", zap.Error(e))
	}
	return rep, err
}

// readsStdin reports whether the input is standard input: a single "-"
// pattern or the stdin option.
func readsStdin(args []string) bool {
	if len(args) == 1 && args[0] == "-" {
		return true
	}
	return getBoolWithFallback("stdin", "convert.stdin", false)
}

// outputFormat resolves the output format from the flag or the config key.
func outputFormat(configKey string, defaultVal report.OutputFormat) (report.OutputFormat, error) {
	name := getStringWithFallback("output-format", configKey, string(defaultVal))
	format, err := report.ParseOutputFormat(name)
	if err != nil {
		return "", fmt.Errorf("invalid output format: %w", err)
	}
	return format, nil
}

// writeReport writes the report to the command output unless quiet is set.
func writeReport(cmd *cobra.Command, rep *report.Report, format report.OutputFormat) error {
	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	return report.WriteOutput(cmd.OutOrStdout(), rep, format, buildOutputOptions())
}
