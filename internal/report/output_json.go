package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/jsdev/css-to-tailwind-classes/internal/tailwind"
)

// SchemaVersion is the version of the JSON export schema.
const SchemaVersion = "1.0"

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     Stats       `json:"stats"`
	Files     []JSONFile  `json:"files"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONFile holds the rules converted from one file
type JSONFile struct {
	Path        string            `json:"path"`
	Rules       []tailwind.Result `json:"rules"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// JSONIssue represents a single conversion issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Selector string `json:"selector"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, rep *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(buildJSONOutput(rep))
}

func buildJSONOutput(rep *Report) JSONOutput {
	errors, warnings := countSeverities(rep.Issues)

	issues := make([]JSONIssue, len(rep.Issues))
	for i, issue := range rep.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Selector: issue.Selector,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	files := make([]JSONFile, len(rep.Files))
	for i, f := range rep.Files {
		rules := f.Results
		if rules == nil {
			rules = []tailwind.Result{}
		}
		files[i] = JSONFile{
			Path:        f.Path,
			Rules:       rules,
			Suggestions: f.Suggestions,
		}
	}

	return JSONOutput{
		Version:   SchemaVersion,
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(rep.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    rep.TruncatedCount,
			FilesScanned: rep.Stats.Files,
		},
		Stats:  rep.Stats,
		Files:  files,
		Issues: issues,
	}
}
