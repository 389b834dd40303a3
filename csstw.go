// Package csstw converts CSS rules into Tailwind CSS utility classes.
//
// The converter parses plain CSS, runs every declaration through a table of
// known values and a chain of property matchers, and falls back to
// arbitrary-value classes. Pseudo selectors become variant prefixes.
//
// # Converting a string
//
//	results, err := csstw.ConvertString(".btn { padding: 8px 16px; }", csstw.DefaultSettings())
//	// results[0].Classes == []string{"py-2", "px-4"}
//
// # Converting files
//
//	rep, err := csstw.ConvertFiles(csstw.Config{
//		Inputs:   []string{"web/styles/**/*.css"},
//		Settings: csstw.DefaultSettings(),
//	})
//
// # CLI Tool
//
// css2tw also provides a CLI tool. Install with:
//
//	go install github.com/jsdev/css-to-tailwind-classes/cmd/css2tw@latest
package csstw

import (
	"errors"
	"fmt"

	"github.com/jsdev/css-to-tailwind-classes/internal/tailwind"
)

// Engine types, re-exported for library users.
type (
	Rule          = tailwind.Rule
	Declaration   = tailwind.Declaration
	PseudoInfo    = tailwind.PseudoInfo
	Result        = tailwind.Result
	Mapping       = tailwind.Mapping
	Unconvertible = tailwind.Unconvertible
	Settings      = tailwind.Settings
	RepeatPattern = tailwind.RepeatPattern
)

// ErrInvalidThreshold is returned when the repeater threshold is below 2.
var ErrInvalidThreshold = tailwind.ErrInvalidThreshold

// ErrConversionPanic wraps an unexpected failure inside the engine.
var ErrConversionPanic = errors.New("conversion failed")

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return tailwind.DefaultSettings()
}

// Parse extracts rules from CSS text in source order.
func Parse(css string) []Rule {
	return tailwind.Parse(css)
}

// convertRules is the engine entry point used by Convert.
var convertRules = tailwind.Convert

// Convert converts parsed rules, one Result per Rule.
func Convert(rules []Rule, settings Settings) ([]Result, error) {
	return convertRules(rules, settings)
}

// ConvertString parses and converts css. A panic inside the engine is
// returned as ErrConversionPanic with an empty result list.
func ConvertString(css string, settings Settings) (results []Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = []Result{}
			err = fmt.Errorf("%w: %v", ErrConversionPanic, r)
		}
	}()
	return Convert(Parse(css), settings)
}

// ParseSelector extracts the pseudo variants of a selector and returns the
// selector without them.
func ParseSelector(selector string) (PseudoInfo, string) {
	return tailwind.ParseSelector(selector)
}

// OptimizeCustomVariable rewrites p-[var(--gap)] to p-(--gap) where the
// property supports it.
func OptimizeCustomVariable(property, class string) string {
	return tailwind.OptimizeCustomVariable(property, class)
}

// AnalyzeRepeats finds a repeated track pattern in a grid template value.
func AnalyzeRepeats(value string, threshold int) (RepeatPattern, bool) {
	return tailwind.AnalyzeRepeats(value, threshold)
}

// OptimizeRepeatValue rewrites a grid template with repeat() when a pattern
// repeats at least threshold times.
func OptimizeRepeatValue(property, value string, threshold int) string {
	return tailwind.OptimizeRepeatValue(property, value, threshold)
}
