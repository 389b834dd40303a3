package tailwind

import (
	"regexp"
	"strings"
)

// spacingPrefixes maps spacing properties to their utility prefix.
var spacingPrefixes = map[string]string{
	"top":                "top",
	"right":              "right",
	"bottom":             "bottom",
	"left":               "left",
	"inset":              "inset",
	"inset-inline":       "inset-x",
	"inset-block":        "inset-y",
	"inset-inline-start": "start",
	"inset-inline-end":   "end",

	"margin":              "m",
	"margin-top":          "mt",
	"margin-right":        "mr",
	"margin-bottom":       "mb",
	"margin-left":         "ml",
	"margin-inline":       "mx",
	"margin-block":        "my",
	"margin-inline-start": "ms",
	"margin-inline-end":   "me",

	"padding":              "p",
	"padding-top":          "pt",
	"padding-right":        "pr",
	"padding-bottom":       "pb",
	"padding-left":         "pl",
	"padding-inline":       "px",
	"padding-block":        "py",
	"padding-inline-start": "ps",
	"padding-inline-end":   "pe",

	"gap":             "gap",
	"row-gap":         "gap-y",
	"column-gap":      "gap-x",
	"grid-gap":        "gap",
	"grid-row-gap":    "gap-y",
	"grid-column-gap": "gap-x",

	"scroll-margin":  "scroll-m",
	"scroll-padding": "scroll-p",
	"border-spacing": "border-spacing",
}

var shorthandToken = regexp.MustCompile(`^-?\d*\.?\d+(px|rem|em|%|vh|vw)?$`)

// spacingTokens returns the tokens of a 2 to 4 value numeric shorthand.
func spacingTokens(value string) ([]string, bool) {
	parts := strings.Fields(strings.ToLower(value))
	if len(parts) < 2 || len(parts) > 4 {
		return nil, false
	}
	for _, p := range parts {
		if !shorthandToken.MatchString(p) {
			return nil, false
		}
	}
	return parts, true
}

// sideClass builds one spacing utility, handling auto and negative values:
// ("mt", "-8px") -> "-mt-2", ("mt", "-13px") -> "mt-[-13px]".
func sideClass(prefix, token string) string {
	tok := strings.ToLower(strings.TrimSpace(token))
	if tok == "auto" {
		return prefix + "-auto"
	}
	if isZero(tok) {
		return prefix + "-0"
	}
	if rest, neg := strings.CutPrefix(tok, "-"); neg {
		suffix := spacingSuffix(rest)
		if strings.HasPrefix(suffix, "[") {
			return prefix + "-[" + tok + "]"
		}
		return "-" + prefix + "-" + suffix
	}
	return prefix + "-" + spacingSuffix(tok)
}

// shorthandClasses expands a margin or padding shorthand. p is "m" or "p".
func shorthandClasses(p string, parts []string, s Settings) []string {
	var top, right, bottom, left string
	switch len(parts) {
	case 2:
		top, right, bottom, left = parts[0], parts[1], parts[0], parts[1]
	case 3:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[1]
	case 4:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[3]
	default:
		return nil
	}

	t, r, b, l := sideClass(p+"t", top), sideClass(p+"r", right), sideClass(p+"b", bottom), sideClass(p+"l", left)
	same := func(a, b string) bool { return sideClass(p, a) == sideClass(p, b) }

	if same(top, bottom) && same(right, left) {
		if same(top, right) {
			return []string{sideClass(p, top)}
		}
		if s.PreferShortClassNames {
			return []string{sideClass(p+"y", top), sideClass(p+"x", right)}
		}
	}
	if len(parts) == 3 && s.PreferShortClassNames {
		return []string{t, sideClass(p+"x", right), b}
	}
	return []string{t, r, b, l}
}

func newPaddingShorthandMatcher() Matcher {
	return &matcher{
		name: "padding-shorthand",
		match: func(prop, value string) bool {
			_, ok := spacingTokens(value)
			return prop == "padding" && ok
		},
		convert: func(_, value string, s Settings) []string {
			parts, _ := spacingTokens(value)
			return shorthandClasses("p", parts, s)
		},
	}
}

func newMarginShorthandMatcher() Matcher {
	return &matcher{
		name: "margin-shorthand",
		match: func(prop, value string) bool {
			_, ok := spacingTokens(value)
			return prop == "margin" && ok
		},
		convert: func(_, value string, s Settings) []string {
			parts, _ := spacingTokens(value)
			return shorthandClasses("m", parts, s)
		},
	}
}

// marginAutoParts accepts 1 to 4 value margins with at least one auto
// component and numeric values elsewhere.
func marginAutoParts(value string) ([]string, bool) {
	parts := strings.Fields(strings.ToLower(value))
	if len(parts) == 0 || len(parts) > 4 {
		return nil, false
	}
	auto := false
	for _, p := range parts {
		if p == "auto" {
			auto = true
			continue
		}
		if !shorthandToken.MatchString(p) {
			return nil, false
		}
	}
	return parts, auto
}

// marginAutoClasses keeps the auto axis as one class. The other axis of a
// two value margin collapses only with PreferShortClassNames.
func marginAutoClasses(parts []string, s Settings) []string {
	top, right, bottom, left := parts[0], parts[0], parts[0], parts[0]
	switch len(parts) {
	case 2:
		right, left = parts[1], parts[1]
	case 3:
		right, bottom, left = parts[1], parts[2], parts[1]
	case 4:
		right, bottom, left = parts[1], parts[2], parts[3]
	}

	axis := func(short, a, b, sideA, sideB string) []string {
		if s.PreferShortClassNames && len(parts) == 2 {
			return []string{sideClass(short, a)}
		}
		return []string{sideClass(sideA, a), sideClass(sideB, b)}
	}

	switch {
	case top == "auto" && right == "auto" && bottom == "auto" && left == "auto":
		return []string{"m-auto"}
	case right == "auto" && left == "auto":
		return append([]string{"mx-auto"}, axis("my", top, bottom, "mt", "mb")...)
	case top == "auto" && bottom == "auto":
		return append([]string{"my-auto"}, axis("mx", right, left, "mr", "ml")...)
	}
	return []string{
		sideClass("mt", top),
		sideClass("mr", right),
		sideClass("mb", bottom),
		sideClass("ml", left),
	}
}

func newMarginAutoMatcher() Matcher {
	return &matcher{
		name: "margin-auto",
		match: func(prop, value string) bool {
			_, ok := marginAutoParts(value)
			return prop == "margin" && ok
		},
		convert: func(_, value string, s Settings) []string {
			parts, ok := marginAutoParts(value)
			if !ok {
				return nil
			}
			return marginAutoClasses(parts, s)
		},
	}
}

func newSpacingMatcher() Matcher {
	return &matcher{
		name: "spacing",
		match: func(prop, _ string) bool {
			_, ok := spacingPrefixes[prop]
			return ok
		},
		convert: func(prop, value string, _ Settings) []string {
			return spacingClasses(prop, value)
		},
	}
}

// spacingClasses converts a single spacing property. Two-value gap maps to
// the row and column axes.
func spacingClasses(prop, value string) []string {
	prefix := spacingPrefixes[prop]
	v := strings.TrimSpace(value)

	if isCSSFunction(v) {
		return []string{arbitrary(prefix, v)}
	}

	parts := strings.Fields(v)
	if len(parts) == 2 && prefix == "gap" {
		return []string{sideClass("gap-y", parts[0]), sideClass("gap-x", parts[1])}
	}
	if len(parts) != 1 {
		return []string{arbitrary(prefix, v)}
	}

	lower := strings.ToLower(v)
	if lower != "auto" {
		if _, ok := parseLength(lower); !ok {
			return nil
		}
	}
	return []string{sideClass(prefix, lower)}
}
