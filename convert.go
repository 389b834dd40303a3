package csstw

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsdev/css-to-tailwind-classes/internal/report"
	"github.com/jsdev/css-to-tailwind-classes/internal/tailwind"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrNoInputs is returned when the input patterns match no CSS file.
var ErrNoInputs = errors.New("no CSS files matched the inputs")

// Config holds file conversion configuration
type Config struct {
	Inputs   []string      // ["web/styles/**/*.css", "theme.css", "components/"]
	Settings Settings      // Conversion settings
	Limits   report.Limits // Issue limits of the report
	Logger   *zap.Logger   // Debug logging; nil disables it
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ConvertFiles converts every CSS file matched by config.Inputs. A file that
// cannot be read is recorded as a report warning; the read errors are
// returned combined together with the report of the remaining files.
func ConvertFiles(config Config) (*report.Report, error) {
	logger := config.logger()

	conv, err := tailwind.NewConverter(config.Settings, tailwind.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	// 1. Expand inputs
	files, stats, err := ExpandInputs(config.Inputs)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	logger.Debug("expanded inputs",
		zap.Strings("patterns", config.Inputs),
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped),
	)
	if len(files) == 0 {
		return nil, ErrNoInputs
	}

	// 2. Convert each file
	var (
		results  []report.FileResult
		warnings []string
		errs     error
	)
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("reading %s: %w", file, err))
			warnings = append(warnings, fmt.Sprintf("Failed to read %s: %v", file, err))
			continue
		}
		logger.Debug("converting file", zap.String("file", file), zap.Int("bytes", len(content)))
		results = append(results, convertSource(conv, GetRelativePath(file), string(content)))
	}

	if stats.FilesSkipped > 0 {
		warnings = append(warnings, fmt.Sprintf("Skipped %d minified or gitignored %s",
			stats.FilesSkipped, pluralize(stats.FilesSkipped, "file", "files")))
	}

	// 3. Build the report
	rep := report.Build(results, config.Limits)
	rep.Warnings = warnings
	return rep, errs
}

// ConvertReader converts the CSS read from r, such as standard input. name
// is the file name used in issues.
func ConvertReader(r io.Reader, name string, config Config) (*report.Report, error) {
	conv, err := tailwind.NewConverter(config.Settings, tailwind.WithLogger(config.logger()))
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return report.Build([]report.FileResult{convertSource(conv, name, string(content))}, config.Limits), nil
}

// convertSource parses and converts one stylesheet.
func convertSource(conv *tailwind.Converter, path, source string) report.FileResult {
	rules := tailwind.Parse(source)
	return report.FileResult{
		Path:        path,
		Source:      source,
		Results:     conv.Convert(rules),
		Suggestions: repeatSuggestions(rules, conv.Settings()),
	}
}

// repeatSuggestions collects the grid repeat() hints of every rule,
// prefixed with the selector.
func repeatSuggestions(rules []Rule, settings Settings) []string {
	var out []string
	for _, rule := range rules {
		for _, s := range tailwind.RepeatSuggestions(rule.Declarations, settings) {
			out = append(out, rule.Selector+" { "+s+" }")
		}
	}
	return out
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
