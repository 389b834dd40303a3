package main

import (
	"errors"
	"fmt"

	"github.com/jsdev/css-to-tailwind-classes/internal/report"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Check that CSS converts to Tailwind classes (CI mode)",
	Long: `Convert the matched CSS files and exit 1 when the result does not pass.
By default any unconvertible declaration fails the check. --threshold
relaxes this to a minimum conversion rate, and --strict also fails on
invalid pseudo-class combinations.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue, including invalid pseudo-classes")
	f.Float64("threshold", 0.0, "Minimum conversion rate in percent")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := loggerFor(cmd)
	defer func() { _ = logger.Sync() }()

	format, err := outputFormat("check.output-format", report.OutputIssues)
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

	err = evaluateCheck(rep.Stats,
		getBoolWithFallback("strict", "check.strict", false),
		getFloat64WithFallback("threshold", "check.threshold", 0.0),
	)
	if err != nil && getBoolWithFallback("quiet", "quiet", false) {
		return &silentError{err: err}
	}
	return err
}

// evaluateCheck applies the exit code policy:
//   - strict: any unconvertible declaration or invalid pseudo-class fails
//   - threshold: a conversion rate below it fails
//   - otherwise: any unconvertible declaration fails
func evaluateCheck(stats report.Stats, strict bool, threshold float64) error {
	switch {
	case strict:
		if stats.Unconvertible > 0 {
			return unconvertibleError(stats.Unconvertible)
		}
		if stats.Warnings > 0 {
			return fmt.Errorf("%w: %d invalid pseudo-class %s", errCheckFailed,
				stats.Warnings, pluralize(stats.Warnings, "combination", "combinations"))
		}
	case threshold > 0:
		if stats.Rate < threshold {
			return fmt.Errorf("%w: conversion rate %.1f%% is below threshold %.1f%%",
				errCheckFailed, stats.Rate, threshold)
		}
	case stats.Unconvertible > 0:
		return unconvertibleError(stats.Unconvertible)
	}
	return nil
}

func unconvertibleError(n int) error {
	return fmt.Errorf("%w: %d unconvertible %s", errCheckFailed, n, pluralize(n, "declaration", "declarations"))
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
