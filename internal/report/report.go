package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsdev/css-to-tailwind-classes/internal/tailwind"
	"github.com/tdewolff/parse/v2"
)

// StdinName is the file name used for CSS read from standard input.
const StdinName = "<stdin>"

// FileResult holds the conversion of one CSS source
type FileResult struct {
	Path        string
	Source      string
	Results     []tailwind.Result
	Suggestions []string // grid repeat() suggestions
}

// Limits caps the issues kept in a report
type Limits struct {
	MaxIssues     int // 0 = unlimited
	MaxSameIssues int // 0 = unlimited
}

// Stats summarizes a conversion
type Stats struct {
	Files         int             `json:"files"`
	Rules         int             `json:"rules"`
	Declarations  int             `json:"declarations"`
	Converted     int             `json:"converted"`
	Unconvertible int             `json:"unconvertible"`
	Classes       int             `json:"classes"`
	Warnings      int             `json:"warnings"`
	Rate          float64         `json:"rate"` // converted / declarations, in percent
	Categories    []CategoryStats `json:"categories"`
}

// Report contains the conversion results and everything derived from them
type Report struct {
	Files          []FileResult
	Issues         []Issue
	TruncatedCount int // Issues removed due to limits
	Stats          Stats
	Warnings       []string // Files that could not be read or were skipped
}

// Build derives issues and statistics from converted files.
func Build(files []FileResult, limits Limits) *Report {
	r := &Report{Files: files}
	coverage := categoryCoverage{}

	for _, f := range files {
		lines := strings.Split(f.Source, "\n")
		locate := func(offset int) (IssuePos, []string) {
			pos := IssuePos{Filename: f.Path}
			if f.Source == "" {
				return pos, nil
			}
			pos.Line, pos.Column, _ = parse.Position(strings.NewReader(f.Source), offset)
			if pos.Line < 1 || pos.Line > len(lines) {
				return pos, nil
			}
			return pos, []string{strings.TrimRight(lines[pos.Line-1], "\r")}
		}

		r.Stats.Files++
		for _, res := range f.Results {
			r.Stats.Rules++
			r.Stats.Classes += len(res.Classes)
			r.Stats.Warnings += len(res.Warnings)

			for _, m := range res.Mappings {
				r.Stats.Converted++
				coverage.add(m.Property, true)
			}
			for _, u := range res.Unconvertible {
				r.Stats.Unconvertible++
				coverage.add(u.Property, false)

				pos, src := locate(u.Offset)
				r.Issues = append(r.Issues, Issue{
					FromLinter:  LinterName,
					Text:        fmt.Sprintf(IssueUnconvertible, u.Property, u.Value, u.Reason),
					Severity:    SeverityError,
					SourceLines: src,
					Pos:         pos,
					Selector:    res.Selector,
				})
			}
			for _, w := range res.Warnings {
				pos, src := locate(res.Offset)
				r.Issues = append(r.Issues, Issue{
					FromLinter:  LinterName,
					Text:        fmt.Sprintf(IssueInvalidPseudo, res.Selector, w),
					Severity:    SeverityWarning,
					SourceLines: src,
					Pos:         pos,
					Selector:    res.Selector,
				})
			}
		}
	}

	r.Stats.Declarations = r.Stats.Converted + r.Stats.Unconvertible
	r.Stats.Rate = percent(r.Stats.Converted, r.Stats.Declarations)
	r.Stats.Categories = coverage.list()

	sortIssues(r.Issues)
	r.Issues, r.TruncatedCount = limitIssues(r.Issues, limits)
	return r
}

// Suggestions returns the repeat() suggestions of every file.
func (r *Report) Suggestions() []string {
	var out []string
	for _, f := range r.Files {
		out = append(out, f.Suggestions...)
	}
	return out
}

// ErrorCount counts the issues with error severity.
func (r *Report) ErrorCount() int {
	errors, _ := countSeverities(r.Issues)
	return errors
}

func percent(part, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(part) / float64(total) * 100
}

func countSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		if a.Pos.Filename != b.Pos.Filename {
			return strings.Compare(a.Pos.Filename, b.Pos.Filename)
		}
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line - b.Pos.Line
		}
		return a.Pos.Column - b.Pos.Column
	})
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, limits Limits) ([]Issue, int) {
	originalCount := len(issues)

	if limits.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, limits.MaxSameIssues)
	}
	if limits.MaxIssues > 0 && len(issues) > limits.MaxIssues {
		issues = issues[:limits.MaxIssues]
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	counts := make(map[string]int)
	var filtered []Issue
	for _, issue := range issues {
		if counts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			counts[issue.Text]++
		}
	}
	return filtered
}
