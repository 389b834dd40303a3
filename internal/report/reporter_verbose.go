package report

import (
	"fmt"
	"io"
	"strings"
)

const progressBarWidth = 20

// VerboseReporter prints statistics, coverage and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

func (r *VerboseReporter) header(text string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, text, r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", len(text)+2))
}

// PrintStatistics outputs the conversion totals
func (r *VerboseReporter) PrintStatistics(rep *Report) {
	s := rep.Stats
	r.header("Conversion Statistics")

	fmt.Fprintf(r.w, "%-16s %d\n", "Files:", s.Files)
	fmt.Fprintf(r.w, "%-16s %d\n", "Rules:", s.Rules)
	fmt.Fprintf(r.w, "%-16s %d\n", "Declarations:", s.Declarations)
	fmt.Fprintf(r.w, "%-16s %d (%.1f%%)\n", "Converted:", s.Converted, s.Rate)
	fmt.Fprintf(r.w, "%-16s %d\n", "Unconvertible:", s.Unconvertible)
	fmt.Fprintf(r.w, "%-16s %d\n", "Classes:", s.Classes)
	fmt.Fprintf(r.w, "%-16s %d\n", "Pseudo warnings:", s.Warnings)
}

// PrintCoverage shows the conversion rate of every property category
func (r *VerboseReporter) PrintCoverage(rep *Report) {
	if len(rep.Stats.Categories) == 0 {
		return
	}
	r.header("Coverage by Category")

	for _, c := range rep.Stats.Categories {
		style := StyleGreen
		if c.Unconvertible > 0 {
			style = StyleYellow
		}
		fmt.Fprintf(r.w, "%-11s %s %d/%d\n",
			c.Category,
			RenderStyle(style, progressBar(c.Rate), r.useColors),
			c.Converted, c.Declarations)
	}
}

// PrintConversionProgress shows the overall rate as a progress bar
func (r *VerboseReporter) PrintConversionProgress(rep *Report) {
	r.header("Conversion Progress")
	fmt.Fprintln(r.w, progressBar(rep.Stats.Rate))
}

// PrintSuggestions shows grid templates that could use repeat()
func (r *VerboseReporter) PrintSuggestions(rep *Report) {
	suggestions := rep.Suggestions()
	if len(suggestions) == 0 {
		return
	}
	r.header("Repeat Suggestions")

	for i, s := range suggestions {
		fmt.Fprintf(r.w, "%d. %s\n", i+1, s)
	}
}

// PrintWarnings shows files that were skipped or could not be read
func (r *VerboseReporter) PrintWarnings(rep *Report) {
	if len(rep.Warnings) == 0 {
		return
	}
	r.header("Warnings")

	for _, warning := range rep.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// progressBar renders percentage as a fixed-width bar
func progressBar(percentage float64) string {
	filled := int(percentage / 100 * progressBarWidth)
	filled = max(0, min(filled, progressBarWidth))
	return fmt.Sprintf("[%s%s] %.1f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", progressBarWidth-filled),
		percentage)
}
