package report

// Issue is a single conversion problem in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "css2tw"
	Text        string   `json:"Text"`        // "cannot convert \"float: inline-start\": ..."
	Severity    string   `json:"Severity"`    // "error", "warning"
	SourceLines []string `json:"SourceLines"` // Lines of CSS with the issue
	Pos         IssuePos `json:"Pos"`         // File location
	Selector    string   `json:"Selector"`    // Rule the issue belongs to
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/button.css"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 3 (1-based start of the property or selector)
}

// LinterName is the FromLinter value of every issue.
const LinterName = "css2tw"

// IssueSeverity constants
const (
	// SeverityError marks a declaration that produced no class.
	SeverityError = "error"
	// SeverityWarning marks an invalid pseudo combination. Its classes are
	// still emitted.
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueUnconvertible = "cannot convert \"%s: %s\": %s"
	IssueInvalidPseudo = "%s: %s"
)
