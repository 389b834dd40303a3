package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{name: "default", input: "", expected: OutputClasses},
		{name: "classes", input: "classes", expected: OutputClasses},
		{name: "issues", input: "issues", expected: OutputIssues},
		{name: "full", input: "FULL", expected: OutputFull},
		{name: "json", input: "json", expected: OutputJSON},
		{name: "markdown", input: "markdown", expected: OutputMarkdown},
		{name: "markdown shorthand", input: "md", expected: OutputMarkdown},
		{name: "unknown", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "classes, issues, full, json, markdown")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestShouldUseColors(t *testing.T) {
	assert.True(t, ShouldUseColors(true))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, ShouldUseColors(false))

	t.Run("regular file is not a terminal", func(t *testing.T) {
		t.Setenv("FORCE_COLOR", "")
		t.Setenv("GITHUB_ACTIONS", "")

		f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer f.Close()

		stdout := os.Stdout
		os.Stdout = f
		defer func() { os.Stdout = stdout }()

		assert.False(t, ShouldUseColors(false))
	})
}

func TestWriteOutput(t *testing.T) {
	tests := []struct {
		name        string
		format      OutputFormat
		contains    []string
		notContains []string
	}{
		{
			name:        "classes",
			format:      OutputClasses,
			contains:    []string{".btn → flex\n"},
			notContains: []string{"cannot convert", "Conversion Statistics"},
		},
		{
			name:        "issues",
			format:      OutputIssues,
			contains:    []string{"styles/button.css:3:3:", "2 issues (1 error, 1 warning):"},
			notContains: []string{".btn → flex", "Conversion Statistics"},
		},
		{
			name:   "full",
			format: OutputFull,
			contains: []string{
				".btn → flex\n",
				"styles/button.css:3:3:",
				"Conversion Statistics",
				"Conversion Progress",
				"Coverage by Category",
				"Repeat Suggestions",
			},
			notContains: []string{"Warnings\n"},
		},
		{
			name:     "json",
			format:   OutputJSON,
			contains: []string{`"version": "1.0"`},
		},
		{
			name:     "markdown",
			format:   OutputMarkdown,
			contains: []string{"# CSS to Tailwind Conversion Report"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rep := Build([]FileResult{sampleFile()}, Limits{})
			require.NoError(t, WriteOutput(&buf, rep, tt.format, Options{PrintIssuedLines: true}))

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, buf.String(), unwanted)
			}
		})
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOutput(&buf, Build(nil, Limits{}), OutputFormat("xml"), Options{})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build([]FileResult{sampleFile()}, Limits{MaxSameIssues: 5})))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, SchemaVersion, output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, FilesScanned: 1}, output.Summary)
	assert.Equal(t, 3, output.Stats.Declarations)
	require.Len(t, output.Stats.Categories, 2)

	require.Len(t, output.Files, 1)
	assert.Equal(t, "styles/button.css", output.Files[0].Path)
	require.Len(t, output.Files[0].Rules, 2)
	assert.Equal(t, []string{"flex"}, output.Files[0].Rules[0].Classes)
	assert.Equal(t, "sideways", output.Files[0].Rules[0].Unconvertible[0].Value)

	require.Len(t, output.Issues, 2)
	assert.Equal(t, JSONIssue{
		File:     "styles/button.css",
		Line:     3,
		Column:   3,
		Severity: SeverityError,
		Message:  `cannot convert "float: sideways": not supported`,
		Selector: ".btn",
		Linter:   LinterName,
		Source:   "  float: sideways;",
	}, output.Issues[0])
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build(nil, Limits{})))

	assert.Contains(t, buf.String(), `"files": []`)
	assert.Contains(t, buf.String(), `"issues": []`)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, Build([]FileResult{sampleFile()}, Limits{})))

	markdown := buf.String()

	assert.Contains(t, markdown, "# CSS to Tailwind Conversion Report")
	assert.Contains(t, markdown, "**Status:** 🔴 Needs Work")
	assert.Contains(t, markdown, "## Summary")
	assert.Contains(t, markdown, "## Coverage by Category")
	assert.Contains(t, markdown, "## Classes")
	assert.Contains(t, markdown, "## Issues")
	assert.Contains(t, markdown, "## Repeat Suggestions")

	assert.Contains(t, markdown, "| **Files Scanned** | 1 |")
	assert.Contains(t, markdown, "| **Conversion Rate** | 66.7% |")
	assert.Contains(t, markdown, "| **Declarations Converted** | 2 / 3 |")
	assert.Contains(t, markdown, "| **Total Issues** | 2 (1 error, 1 warning) |")
	assert.Contains(t, markdown, "| Layout | 1 / 2 | 50.0% |")
	assert.Contains(t, markdown, "| `.btn` | `flex` |")
	assert.Contains(t, markdown, "| `styles/button.css:3:3` | error |")
	assert.Contains(t, markdown, "- `grid-template-columns: 1fr 1fr 1fr → grid-cols-3`")

	// single file, no per-file heading
	assert.NotContains(t, markdown, "### `styles/button.css`")
	assert.Contains(t, markdown, "*Generated by css2tw*")
}

func TestMarkdownStatusBadges(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{100, "🟢 Excellent"},
		{90, "🟢 Excellent"},
		{75, "🟡 Good"},
		{69.9, "🔴 Needs Work"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusBadge(tt.rate))
		})
	}
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, `a\|b`, escapeCell("a|b"))
}
