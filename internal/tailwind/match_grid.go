package tailwind

import (
	"regexp"
	"strconv"
	"strings"
)

var gridTemplatePrefixes = map[string]string{
	"grid-template-columns": "grid-cols",
	"grid-template-rows":    "grid-rows",
}

// gridTemplateLimits is the largest N with a named grid-cols-N / grid-rows-N.
var gridTemplateLimits = map[string]int{
	"grid-template-columns": 12,
	"grid-template-rows":    6,
}

var gridLinePrefixes = map[string]string{
	"grid-column": "col",
	"grid-row":    "row",
}

var gridEdgePrefixes = map[string]string{
	"grid-column-start": "col-start",
	"grid-column-end":   "col-end",
	"grid-row-start":    "row-start",
	"grid-row-end":      "row-end",
}

var gridAutoPrefixes = map[string]string{
	"grid-auto-columns": "auto-cols",
	"grid-auto-rows":    "auto-rows",
}

var gridAutoValues = map[string]string{
	"auto":            "auto",
	"min-content":     "min",
	"max-content":     "max",
	"1fr":             "fr",
	"minmax(0,1fr)":   "fr",
	"minmax(0px,1fr)": "fr",
}

var (
	repeatFr   = regexp.MustCompile(`^repeat\(\s*(\d+)\s*,\s*(?:1fr|minmax\(\s*0(?:px)?\s*,\s*1fr\s*\))\s*\)$`)
	spanPat    = regexp.MustCompile(`^span\s+(\d+)$`)
	integerPat = regexp.MustCompile(`^-?\d+$`)
)

// gridProperties are the properties owned by the grid matcher.
var gridProperties = func() map[string]bool {
	props := map[string]bool{"grid-template-areas": true, "grid-area": true}
	for _, m := range []map[string]string{gridTemplatePrefixes, gridLinePrefixes, gridEdgePrefixes, gridAutoPrefixes} {
		for k := range m {
			props[k] = true
		}
	}
	return props
}()

func newGridMatcher() Matcher {
	return &matcher{
		name: "grid",
		match: func(prop, _ string) bool {
			return gridProperties[prop]
		},
		convert: func(prop, value string, s Settings) []string {
			switch {
			case gridTemplatePrefixes[prop] != "":
				return []string{gridTemplateClass(prop, value, s)}
			case gridLinePrefixes[prop] != "":
				return gridLineClasses(prop, value)
			case gridEdgePrefixes[prop] != "":
				return gridEdgeClass(prop, value)
			case gridAutoPrefixes[prop] != "":
				prefix := gridAutoPrefixes[prop]
				if v, ok := gridAutoValues[stripSpaces(strings.ToLower(value))]; ok {
					return []string{prefix + "-" + v}
				}
				return []string{arbitrary(prefix, value)}
			}
			return []string{arbitraryProperty(prop, value)}
		},
	}
}

// gridTemplateClass converts grid-template-columns or grid-template-rows.
func gridTemplateClass(prop, value string, s Settings) string {
	prefix := gridTemplatePrefixes[prop]
	limit := gridTemplateLimits[prop]
	lower := collapseSpaces(strings.ToLower(value))

	switch lower {
	case "none", "subgrid":
		return prefix + "-" + lower
	}

	if m := repeatFr.FindStringSubmatch(lower); m != nil {
		if n, _ := strconv.Atoi(m[1]); n > 0 && n <= limit {
			return prefix + "-" + m[1]
		}
	}

	tracks := splitSpaces(lower)
	if len(tracks) > 0 && allEqual(tracks) && tracks[0] == "1fr" && len(tracks) <= limit {
		return prefix + "-" + strconv.Itoa(len(tracks))
	}

	if s.RepeaterOptimization {
		if p, ok := AnalyzeRepeats(value, s.RepeaterThreshold); ok {
			return RepeatClass(prop, p)
		}
	}

	return arbitrary(prefix, value)
}

// gridLineClasses converts grid-column and grid-row.
func gridLineClasses(prop, value string) []string {
	prefix := gridLinePrefixes[prop]
	lower := collapseSpaces(strings.ToLower(value))

	if lower == "auto" {
		return []string{prefix + "-auto"}
	}
	if m := spanPat.FindStringSubmatch(lower); m != nil {
		return []string{prefix + "-span-" + m[1]}
	}

	if start, end, ok := strings.Cut(lower, "/"); ok {
		start, end = strings.TrimSpace(start), strings.TrimSpace(end)
		if start == "1" && end == "-1" {
			return []string{prefix + "-span-full"}
		}
		if m := spanPat.FindStringSubmatch(end); m != nil && integerPat.MatchString(start) {
			return []string{prefix + "-start-" + start, prefix + "-span-" + m[1]}
		}
		if isGridLine(start) && isGridLine(end) {
			return []string{lineClass(prefix+"-start", start), lineClass(prefix+"-end", end)}
		}
	}

	return []string{arbitrary(prefix, value)}
}

func isGridLine(v string) bool {
	return v == "auto" || integerPat.MatchString(v)
}

func lineClass(prefix, v string) string {
	if strings.HasPrefix(v, "-") {
		return prefix + "-[" + v + "]"
	}
	return prefix + "-" + v
}

// gridEdgeClass converts the grid-*-start and grid-*-end longhands.
func gridEdgeClass(prop, value string) []string {
	prefix := gridEdgePrefixes[prop]
	lower := strings.ToLower(strings.TrimSpace(value))
	if isGridLine(lower) {
		return []string{lineClass(prefix, lower)}
	}
	return nil
}
