package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputFormat selects how a report is written
type OutputFormat string

const (
	// OutputClasses prints one "selector → classes" line per rule (default)
	OutputClasses OutputFormat = "classes"
	// OutputIssues shows only unconvertible declarations and pseudo warnings
	// in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputFull shows classes, issues, statistics and suggestions
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// OutputFormats lists the accepted --output-format values.
var OutputFormats = []string{
	string(OutputClasses),
	string(OutputIssues),
	string(OutputFull),
	string(OutputJSON),
	string(OutputMarkdown),
}

// Options controls the terminal writers
type Options struct {
	UseColors        bool // Enable color output
	PrintIssuedLines bool // Show source lines with issues
	PrintLinterName  bool // Show (css2tw) suffix
}

// ParseOutputFormat validates a format name. An empty name is the default
// classes format.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classes":
		return OutputClasses, nil
	case "issues":
		return OutputIssues, nil
	case "full":
		return OutputFull, nil
	case "json":
		return OutputJSON, nil
	case "markdown", "md":
		return OutputMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(OutputFormats, ", "))
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, rep *Report, format OutputFormat, opts Options) error {
	switch format {
	case OutputClasses:
		NewReporter(w, opts).PrintClasses(rep.Files)

	case OutputIssues:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(rep.Issues)
		reporter.PrintSummary(rep)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintClasses(rep.Files)
		if len(rep.Issues) > 0 {
			fmt.Fprintln(w)
		}
		reporter.PrintIssues(rep.Issues)
		reporter.PrintSummary(rep)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(rep)
		verbose.PrintConversionProgress(rep)
		verbose.PrintCoverage(rep)
		verbose.PrintSuggestions(rep)
		verbose.PrintWarnings(rep)

	case OutputJSON:
		if err := WriteJSON(w, rep); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, rep); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
