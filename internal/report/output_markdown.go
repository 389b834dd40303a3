package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes a shareable Markdown report
func WriteMarkdown(w io.Writer, rep *Report) error {
	bw := bufio.NewWriter(w)
	s := rep.Stats
	errors, warnings := countSeverities(rep.Issues)

	fmt.Fprintln(bw, "# CSS to Tailwind Conversion Report")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "**Status:** %s\n", statusBadge(s.Rate))
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "## Summary")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| Metric | Value |")
	fmt.Fprintln(bw, "|--------|-------|")
	fmt.Fprintf(bw, "| **Files Scanned** | %d |\n", s.Files)
	fmt.Fprintf(bw, "| **Rules** | %d |\n", s.Rules)
	fmt.Fprintf(bw, "| **Conversion Rate** | %.1f%% |\n", s.Rate)
	fmt.Fprintf(bw, "| **Declarations Converted** | %d / %d |\n", s.Converted, s.Declarations)
	fmt.Fprintf(bw, "| **Total Issues** | %d (%s, %s) |\n", len(rep.Issues),
		pluralizeCount(errors, "error", "errors"),
		pluralizeCount(warnings, "warning", "warnings"))
	fmt.Fprintln(bw)

	if len(s.Categories) > 0 {
		fmt.Fprintln(bw, "## Coverage by Category")
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "| Category | Converted | Rate |")
		fmt.Fprintln(bw, "|----------|-----------|------|")
		for _, c := range s.Categories {
			fmt.Fprintf(bw, "| %s | %d / %d | %.1f%% |\n", c.Category, c.Converted, c.Declarations, c.Rate)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "## Classes")
	fmt.Fprintln(bw)
	for _, f := range rep.Files {
		if len(rep.Files) > 1 {
			fmt.Fprintf(bw, "### `%s`\n\n", f.Path)
		}
		fmt.Fprintln(bw, "| Selector | Classes |")
		fmt.Fprintln(bw, "|----------|---------|")
		for _, res := range f.Results {
			fmt.Fprintf(bw, "| `%s` | `%s` |\n", escapeCell(res.Selector), escapeCell(res.ClassString()))
		}
		fmt.Fprintln(bw)
	}

	if len(rep.Issues) > 0 {
		fmt.Fprintln(bw, "## Issues")
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "| Location | Severity | Message |")
		fmt.Fprintln(bw, "|----------|----------|---------|")
		for _, issue := range rep.Issues {
			fmt.Fprintf(bw, "| `%s:%d:%d` | %s | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
				issue.Severity, escapeCell(issue.Text))
		}
		if rep.TruncatedCount > 0 {
			fmt.Fprintf(bw, "\n*%s not shown.*\n", pluralizeCount(rep.TruncatedCount, "issue", "issues"))
		}
		fmt.Fprintln(bw)
	}

	if suggestions := rep.Suggestions(); len(suggestions) > 0 {
		fmt.Fprintln(bw, "## Repeat Suggestions")
		fmt.Fprintln(bw)
		for _, sug := range suggestions {
			fmt.Fprintf(bw, "- `%s`\n", sug)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "---")
	fmt.Fprintln(bw, "*Generated by css2tw*")
	return bw.Flush()
}

// statusBadge grades a conversion by its rate
func statusBadge(rate float64) string {
	switch {
	case rate >= 90:
		return "🟢 Excellent"
	case rate >= 70:
		return "🟡 Good"
	default:
		return "🔴 Needs Work"
	}
}

// escapeCell keeps pipes from breaking a table row
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
