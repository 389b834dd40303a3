package tailwind

import (
	"strings"
)

var (
	decorationLines = map[string]string{
		"underline":    "underline",
		"overline":     "overline",
		"line-through": "line-through",
		"none":         "no-underline",
	}
	decorationStyles = map[string]string{
		"solid":  "decoration-solid",
		"double": "decoration-double",
		"dotted": "decoration-dotted",
		"dashed": "decoration-dashed",
		"wavy":   "decoration-wavy",
	}
	decorationThickness = map[string]string{
		"auto":      "decoration-auto",
		"from-font": "decoration-from-font",
		"0":         "decoration-0",
		"0px":       "decoration-0",
		"1px":       "decoration-1",
		"2px":       "decoration-2",
		"4px":       "decoration-4",
		"8px":       "decoration-8",
	}
	underlineOffsets = map[string]string{
		"auto": "underline-offset-auto",
		"0":    "underline-offset-0",
		"0px":  "underline-offset-0",
		"1px":  "underline-offset-1",
		"2px":  "underline-offset-2",
		"4px":  "underline-offset-4",
		"8px":  "underline-offset-8",
	}
)

// textKeywordTables covers the text properties that are a plain lookup.
var textKeywordTables = map[string]map[string]string{
	"text-transform": {
		"uppercase":  "uppercase",
		"lowercase":  "lowercase",
		"capitalize": "capitalize",
		"none":       "normal-case",
	},
	"text-align": {
		"left":    "text-left",
		"right":   "text-right",
		"center":  "text-center",
		"justify": "text-justify",
		"start":   "text-start",
		"end":     "text-end",
	},
	"text-overflow": {
		"clip":     "text-clip",
		"ellipsis": "text-ellipsis",
	},
	"text-wrap": {
		"wrap":    "text-wrap",
		"nowrap":  "text-nowrap",
		"balance": "text-balance",
		"pretty":  "text-pretty",
	},
	"white-space": {
		"normal":       "whitespace-normal",
		"nowrap":       "whitespace-nowrap",
		"pre":          "whitespace-pre",
		"pre-line":     "whitespace-pre-line",
		"pre-wrap":     "whitespace-pre-wrap",
		"break-spaces": "whitespace-break-spaces",
	},
	"word-break": {
		"normal":     "break-normal",
		"break-all":  "break-all",
		"keep-all":   "break-keep",
		"break-word": "break-words",
	},
	"overflow-wrap": {
		"normal":     "break-normal",
		"break-word": "break-words",
		"anywhere":   "break-words",
	},
	"hyphens": {
		"none":   "hyphens-none",
		"manual": "hyphens-manual",
		"auto":   "hyphens-auto",
	},
	"vertical-align": {
		"baseline":    "align-baseline",
		"top":         "align-top",
		"middle":      "align-middle",
		"bottom":      "align-bottom",
		"text-top":    "align-text-top",
		"text-bottom": "align-text-bottom",
		"sub":         "align-sub",
		"super":       "align-super",
	},
}

var textProperties = map[string]bool{
	"text-decoration":           true,
	"text-decoration-line":      true,
	"text-decoration-style":     true,
	"text-decoration-thickness": true,
	"text-underline-offset":     true,
	"text-indent":               true,
	"writing-mode":              true,
	"text-orientation":          true,
	"-webkit-line-clamp":        true,
	"line-clamp":                true,
}

func newTextMatcher() Matcher {
	return &matcher{
		name: "text",
		match: func(prop, _ string) bool {
			_, table := textKeywordTables[prop]
			return table || textProperties[prop]
		},
		convert: func(prop, value string, _ Settings) []string {
			return textClasses(prop, value)
		},
	}
}

func textClasses(prop, value string) []string {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	if table, ok := textKeywordTables[prop]; ok {
		if c, ok := table[lower]; ok {
			return []string{c}
		}
		if prop == "vertical-align" {
			return []string{arbitrary("align", v)}
		}
		return nil
	}

	switch prop {
	case "text-decoration", "text-decoration-line":
		return textDecorationClasses(v)
	case "text-decoration-style":
		if c, ok := decorationStyles[lower]; ok {
			return []string{c}
		}
	case "text-decoration-thickness":
		if c, ok := decorationThickness[lower]; ok {
			return []string{c}
		}
		return []string{arbitrary("decoration", v)}
	case "text-underline-offset":
		if c, ok := underlineOffsets[lower]; ok {
			return []string{c}
		}
		return []string{arbitrary("underline-offset", v)}
	case "text-indent":
		if l, ok := parseLength(lower); ok && l.Unit == "rem" && l.Num >= 0 {
			if s, ok := remToStep(l.Num); ok {
				return []string{"indent-" + s}
			}
		}
		return []string{sideClass("indent", lower)}
	case "-webkit-line-clamp", "line-clamp":
		if lower == "none" {
			return []string{"line-clamp-none"}
		}
		if integerPat.MatchString(lower) && !strings.HasPrefix(lower, "-") {
			return []string{"line-clamp-" + lower}
		}
	case "writing-mode", "text-orientation":
		return []string{arbitraryProperty(prop, lower)}
	}
	return nil
}

// textDecorationClasses splits the text-decoration shorthand into line,
// style, thickness and color classes.
func textDecorationClasses(value string) []string {
	var classes []string
	for _, tok := range splitSpaces(value) {
		lower := strings.ToLower(tok)
		switch {
		case decorationLines[lower] != "":
			classes = append(classes, decorationLines[lower])
		case decorationStyles[lower] != "":
			classes = append(classes, decorationStyles[lower])
		case decorationThickness[lower] != "":
			classes = append(classes, decorationThickness[lower])
		default:
			if _, ok := parseLength(lower); ok {
				classes = append(classes, arbitrary("decoration", lower))
				continue
			}
			suffix, ok := colorSuffix(tok)
			if !ok {
				return nil
			}
			classes = append(classes, "decoration-"+suffix)
		}
	}
	return classes
}
