package tailwind

import (
	"strings"
)

// radiusSteps maps radii to the suffix after rounded-*; "" is the bare
// rounded utility.
var radiusSteps = map[string]string{
	"0":        "none",
	"0px":      "none",
	"2px":      "sm",
	"0.125rem": "sm",
	"4px":      "",
	"0.25rem":  "",
	"6px":      "md",
	"0.375rem": "md",
	"8px":      "lg",
	"0.5rem":   "lg",
	"12px":     "xl",
	"0.75rem":  "xl",
	"16px":     "2xl",
	"1rem":     "2xl",
	"24px":     "3xl",
	"1.5rem":   "3xl",
	"9999px":   "full",
	"50%":      "full",
	"100%":     "full",
}

var radiusCorners = map[string]string{
	"border-radius":              "rounded",
	"border-top-left-radius":     "rounded-tl",
	"border-top-right-radius":    "rounded-tr",
	"border-bottom-right-radius": "rounded-br",
	"border-bottom-left-radius":  "rounded-bl",
	"border-start-start-radius":  "rounded-ss",
	"border-start-end-radius":    "rounded-se",
	"border-end-start-radius":    "rounded-es",
	"border-end-end-radius":      "rounded-ee",
}

// radiusClass builds one rounded utility for prefix and a single radius.
func radiusClass(prefix, value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if step, ok := radiusSteps[v]; ok {
		if step == "" {
			return prefix
		}
		return prefix + "-" + step
	}
	l, ok := parseLength(v)
	switch {
	case !ok:
	case l.Unit == "%" && l.Num >= 50:
		return prefix + "-full"
	case l.Unit == "" && l.Num != 0:
		return prefix + "-[" + formatNumber(l.Num) + "px]"
	}
	return arbitrary(prefix, v)
}

func newBorderRadiusShorthandMatcher() Matcher {
	return &matcher{
		name: "border-radius-shorthand",
		match: func(prop, value string) bool {
			return prop == "border-radius" && len(splitSpaces(value)) > 1
		},
		convert: func(_, value string, _ Settings) []string {
			return radiusShorthand(value)
		},
	}
}

// radiusShorthand expands a 2 to 4 value border-radius into corners,
// collapsing equal corners onto a side. Elliptical radii stay arbitrary.
func radiusShorthand(value string) []string {
	if strings.Contains(value, "/") {
		return []string{arbitrary("rounded", value)}
	}
	parts := splitSpaces(strings.ToLower(value))

	var tl, tr, br, bl string
	switch len(parts) {
	case 2:
		tl, tr, br, bl = parts[0], parts[1], parts[0], parts[1]
	case 3:
		tl, tr, br, bl = parts[0], parts[1], parts[2], parts[1]
	case 4:
		tl, tr, br, bl = parts[0], parts[1], parts[2], parts[3]
	default:
		return []string{arbitrary("rounded", value)}
	}

	same := func(a, b string) bool { return radiusClass("rounded", a) == radiusClass("rounded", b) }
	switch {
	case same(tl, tr) && same(tr, br) && same(br, bl):
		return []string{radiusClass("rounded", tl)}
	case same(tl, tr) && same(br, bl):
		return []string{radiusClass("rounded-t", tl), radiusClass("rounded-b", br)}
	case same(tl, bl) && same(tr, br):
		return []string{radiusClass("rounded-l", tl), radiusClass("rounded-r", tr)}
	}
	return []string{
		radiusClass("rounded-tl", tl),
		radiusClass("rounded-tr", tr),
		radiusClass("rounded-br", br),
		radiusClass("rounded-bl", bl),
	}
}

func newBorderRadiusMatcher() Matcher {
	return &matcher{
		name: "border-radius",
		match: func(prop, _ string) bool {
			_, ok := radiusCorners[prop]
			return ok
		},
		convert: func(prop, value string, _ Settings) []string {
			if len(splitSpaces(value)) > 1 {
				return []string{arbitrary(radiusCorners[prop], value)}
			}
			return []string{radiusClass(radiusCorners[prop], value)}
		},
	}
}
