package report

import (
	"fmt"
	"io"
	"strings"
)

// Reporter prints rule classes and issues in golangci-lint style
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter for the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       opts.UseColors,
		printLines:      opts.PrintIssuedLines,
		printLinterName: opts.PrintLinterName,
	}
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintClasses prints one "selector → classes" line per rule. With more
// than one file each group is headed by the file name.
func (r *Reporter) PrintClasses(files []FileResult) {
	arrow := RenderStyle(StyleGray, "→", r.useColors)
	for i, f := range files {
		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(r.w)
			}
			fmt.Fprintln(r.w, RenderStyle(StyleCyan, f.Path, r.useColors))
		}
		for _, res := range f.Results {
			classes := res.ClassString()
			if classes == "" {
				classes = RenderStyle(StyleGray, "(none)", r.useColors)
			} else {
				classes = RenderStyle(StyleGreen, classes, r.useColors)
			}
			fmt.Fprintf(r.w, "%s %s %s\n", res.Selector, arrow, classes)
		}
	}
}

// PrintIssues outputs issues as file:line:col: message (css2tw)
func (r *Reporter) PrintIssues(issues []Issue) {
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column,
// keeping tabs of the source line so the caret lines up.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := min(column-1, len(sourceLine))

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(rep *Report) {
	total := len(rep.Issues)
	truncated := rep.TruncatedCount
	errors, warnings := countSeverities(rep.Issues)

	fmt.Fprintln(r.w)

	// Severity breakdown only when both kinds are present
	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details, pluralizeCount(errors, "error", "errors")+", "+
			pluralizeCount(warnings, "warning", "warnings"))
	}
	if truncated > 0 {
		details = append(details, pluralizeCount(truncated, "issue", "issues")+" truncated")
	}
	head := pluralizeCount(total, "issue", "issues")
	if len(details) > 0 {
		head += " (" + strings.Join(details, "; ") + ")"
	}
	fmt.Fprintf(r.w, "%s:\n", head)

	if total > 0 {
		fmt.Fprintf(r.w, "* %s: %d\n", LinterName, total)
	}
	fmt.Fprintf(r.w, "%d of %d declarations converted (%.1f%%)\n",
		rep.Stats.Converted, rep.Stats.Declarations, rep.Stats.Rate)

	if total > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see coverage by category", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
