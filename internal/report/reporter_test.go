package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "indented property",
			sourceLine: "  padding: 4px;",
			column:     3,
			want:       "  ^",
		},
		{
			name:       "tabs",
			sourceLine: "\t\tcolor: red;",
			column:     3,
			want:       "\t\t^",
		},
		{
			name:       "start of line",
			sourceLine: ".btn {",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func TestPrintClasses(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintClasses([]FileResult{sampleFile()})

	assert.Equal(t, ".btn → flex\n.a::selection:hover → hover:selection:text-red-500\n", buf.String())
}

func TestPrintClassesMultipleFiles(t *testing.T) {
	empty := FileResult{Path: "empty.css"}
	empty.Results = append(empty.Results, sampleFile().Results[0])
	empty.Results[0].Classes = []string{}

	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintClasses([]FileResult{sampleFile(), empty})

	assert.Equal(t,
		"styles/button.css\n"+
			".btn → flex\n"+
			".a::selection:hover → hover:selection:text-red-500\n"+
			"\n"+
			"empty.css\n"+
			".btn → (none)\n",
		buf.String())
}

func TestPrintIssues(t *testing.T) {
	rep := Build([]FileResult{sampleFile()}, Limits{})

	var buf bytes.Buffer
	NewReporter(&buf, Options{PrintIssuedLines: true, PrintLinterName: true}).PrintIssues(rep.Issues)

	assert.Equal(t,
		"styles/button.css:3:3: cannot convert \"float: sideways\": not supported (css2tw)\n"+
			"\t  float: sideways;\n"+
			"\t  ^\n"+
			"styles/button.css:6:1: .a::selection:hover: Invalid pseudo combination: bad (css2tw)\n"+
			"\t.a::selection:hover {\n"+
			"\t^\n",
		buf.String())
}

func TestPrintIssuesCompact(t *testing.T) {
	rep := Build([]FileResult{sampleFile()}, Limits{MaxIssues: 1})

	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintIssues(rep.Issues)

	assert.Equal(t, "styles/button.css:3:3: cannot convert \"float: sideways\": not supported\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name     string
		limits   Limits
		contains []string
	}{
		{
			name:   "errors and warnings",
			limits: Limits{},
			contains: []string{
				"2 issues (1 error, 1 warning):\n",
				"* css2tw: 2\n",
				"2 of 3 declarations converted (66.7%)\n",
				"Hint: Run with --output-format full",
			},
		},
		{
			name:   "truncated",
			limits: Limits{MaxIssues: 1},
			contains: []string{
				"1 issue (1 issue truncated):\n",
				"* css2tw: 1\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, Options{}).PrintSummary(Build([]FileResult{sampleFile()}, tt.limits))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPrintSummarySeparators(t *testing.T) {
	tests := []struct {
		name     string
		report   *Report
		expected string
	}{
		{
			name: "both severities and truncated",
			report: &Report{
				Issues: []Issue{
					{Severity: SeverityError},
					{Severity: SeverityError},
					{Severity: SeverityWarning},
				},
				TruncatedCount: 4,
			},
			expected: "3 issues (2 errors, 1 warning; 4 issues truncated):\n",
		},
		{
			name: "errors only",
			report: &Report{
				Issues: []Issue{{Severity: SeverityError}, {Severity: SeverityError}},
			},
			expected: "2 issues:\n",
		},
		{
			name: "warnings only and truncated",
			report: &Report{
				Issues:         []Issue{{Severity: SeverityWarning}},
				TruncatedCount: 1,
			},
			expected: "1 issue (1 issue truncated):\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, Options{}).PrintSummary(tt.report)
			assert.Contains(t, buf.String(), tt.expected)
			assert.NotContains(t, buf.String(), "error;")
		})
	}
}

func TestPrintSummaryNoIssues(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintSummary(Build(nil, Limits{}))

	assert.Equal(t, "\n0 issues:\n0 of 0 declarations converted (100.0%)\n", buf.String())
}

func TestVerboseReporter(t *testing.T) {
	rep := Build([]FileResult{sampleFile()}, Limits{})
	rep.Warnings = []string{"skipped vendor.min.css"}

	var buf bytes.Buffer
	v := NewVerboseReporter(&buf, false)
	v.PrintStatistics(rep)
	v.PrintConversionProgress(rep)
	v.PrintCoverage(rep)
	v.PrintSuggestions(rep)
	v.PrintWarnings(rep)

	out := buf.String()
	assert.Contains(t, out, "Conversion Statistics\n-----------------------\n")
	assert.Contains(t, out, "Declarations:    3\n")
	assert.Contains(t, out, "Converted:       2 (66.7%)\n")
	assert.Contains(t, out, "[█████████████░░░░░░░] 66.7%\n")
	assert.Contains(t, out, "Layout      [██████████░░░░░░░░░░] 50.0% 1/2\n")
	assert.Contains(t, out, "Typography  [████████████████████] 100.0% 1/1\n")
	assert.Contains(t, out, "1. grid-template-columns: 1fr 1fr 1fr → grid-cols-3\n")
	assert.Contains(t, out, "• skipped vendor.min.css\n")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[░░░░░░░░░░░░░░░░░░░░] 0.0%", progressBar(0))
	assert.Equal(t, "[██████████░░░░░░░░░░] 50.0%", progressBar(50))
	assert.Equal(t, "[████████████████████] 100.0%", progressBar(100))
	assert.Equal(t, "[████████████████████] 120.0%", progressBar(120))
}
