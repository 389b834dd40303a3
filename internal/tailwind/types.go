package tailwind

import "strings"

// Declaration is a single property: value pair from a rule body
type Declaration struct {
	Property string `json:"property"` // trimmed, case preserved
	Value    string `json:"value"`    // trimmed, everything after the first colon
	Offset   int    `json:"-"`        // byte offset of the property in the source
}

// PseudoInfo holds the Tailwind variant names derived from a selector
type PseudoInfo struct {
	Classes  []string `json:"classes,omitempty"`  // "hover", "first", "[&:nth-child(3)]"
	Elements []string `json:"elements,omitempty"` // "before", "file", "[&::part(x)]"
}

// Empty reports whether the selector carried no pseudo selectors.
func (p PseudoInfo) Empty() bool {
	return len(p.Classes) == 0 && len(p.Elements) == 0
}

// Rule is one selector block in source order
type Rule struct {
	Selector     string        `json:"selector"`
	BaseSelector string        `json:"baseSelector"`
	Pseudo       PseudoInfo    `json:"pseudo"`
	Declarations []Declaration `json:"declarations"`
	Offset       int           `json:"-"` // byte offset of the selector in the source
}

// Unconvertible records a declaration no conversion path accepted
type Unconvertible struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Reason   string `json:"reason"`
	Offset   int    `json:"-"`
}

// Mapping records the classes produced for one converted declaration
type Mapping struct {
	Property string   `json:"property"`
	Value    string   `json:"value"`
	Classes  []string `json:"classes"`
	Offset   int      `json:"-"`
}

// Result is the conversion output for one Rule
type Result struct {
	Selector      string          `json:"selector"`
	BaseSelector  string          `json:"baseSelector"`
	Pseudo        PseudoInfo      `json:"pseudo"`
	Classes       []string        `json:"classes"`
	Warnings      []string        `json:"warnings,omitempty"`
	Mappings      []Mapping       `json:"mappings,omitempty"`
	Unconvertible []Unconvertible `json:"unconvertible,omitempty"`
	Offset        int             `json:"-"`
}

// ClassString joins the result classes the way they appear in a class attribute.
func (r Result) ClassString() string {
	return strings.Join(r.Classes, " ")
}
