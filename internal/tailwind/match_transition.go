package tailwind

import (
	"regexp"
	"strconv"
	"strings"
)

var transitionProperties = map[string]string{
	"all":                   "transition-all",
	"none":                  "transition-none",
	"color":                 "transition-colors",
	"background-color":      "transition-colors",
	"border-color":          "transition-colors",
	"text-decoration-color": "transition-colors",
	"fill":                  "transition-colors",
	"stroke":                "transition-colors",
	"opacity":               "transition-opacity",
	"shadow":                "transition-shadow",
	"box-shadow":            "transition-shadow",
	"transform":             "transition-transform",
}

var easings = map[string]string{
	"ease":        "ease-in-out",
	"linear":      "ease-linear",
	"ease-in":     "ease-in",
	"ease-out":    "ease-out",
	"ease-in-out": "ease-in-out",
}

var timeSteps = map[float64]bool{0: true, 75: true, 100: true, 150: true, 200: true, 300: true, 500: true, 700: true, 1000: true}

var timePat = regexp.MustCompile(`^(\d*\.?\d+)(ms|s)$`)

// timeClass converts a CSS time to duration-* or delay-*.
func timeClass(prefix, value string) (string, bool) {
	m := timePat.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if m == nil {
		return "", false
	}
	ms, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", false
	}
	if m[2] == "s" {
		ms *= 1000
	}
	ms = round2(ms)
	if timeSteps[ms] {
		return prefix + "-" + formatNumber(ms), true
	}
	return prefix + "-[" + formatNumber(ms) + "ms]", true
}

// easingClass converts a timing function.
func easingClass(value string) (string, bool) {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)
	if c, ok := easings[lower]; ok {
		return c, true
	}
	if strings.HasPrefix(lower, "cubic-bezier(") || strings.HasPrefix(lower, "steps(") || strings.HasPrefix(lower, "linear(") {
		return arbitrary("ease", v), true
	}
	return "", false
}

func newTransitionMatcher() Matcher {
	return &matcher{
		name: "transition",
		match: func(prop, _ string) bool {
			return strings.HasPrefix(prop, "transition")
		},
		convert: func(prop, value string, _ Settings) []string {
			switch prop {
			case "transition-property":
				return transitionPropertyClasses(splitCommas(strings.ToLower(value)))
			case "transition-duration":
				if c, ok := timeClass("duration", firstCommaItem(value)); ok {
					return []string{c}
				}
			case "transition-delay":
				if c, ok := timeClass("delay", firstCommaItem(value)); ok {
					return []string{c}
				}
			case "transition-timing-function":
				if c, ok := easingClass(firstCommaItem(value)); ok {
					return []string{c}
				}
			case "transition-behavior":
				if strings.EqualFold(strings.TrimSpace(value), "allow-discrete") {
					return []string{"transition-discrete"}
				}
				return []string{"transition-normal"}
			case "transition":
				return transitionShorthand(value)
			}
			return nil
		},
	}
}

func firstCommaItem(value string) string {
	items := splitCommas(value)
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

// transitionPropertyClasses maps property names; unknown names are grouped
// into one arbitrary transition-[a,b] class.
func transitionPropertyClasses(props []string) []string {
	var classes, unknown []string
	for _, p := range props {
		if c, ok := transitionProperties[p]; ok {
			classes = append(classes, c)
			continue
		}
		unknown = append(unknown, p)
	}
	if len(unknown) > 0 {
		classes = append(classes, "transition-["+strings.Join(unknown, ",")+"]")
	}
	return dedupe(classes)
}

// transitionShorthand converts the transition shorthand. Within each
// comma-separated transition the first time is the duration and the second
// the delay.
func transitionShorthand(value string) []string {
	if strings.EqualFold(strings.TrimSpace(value), "none") {
		return []string{"transition-none"}
	}

	var props, timing []string
	for _, item := range splitCommas(value) {
		durationSeen := false
		for _, part := range splitSpaces(item) {
			lower := strings.ToLower(part)
			if timePat.MatchString(lower) {
				prefix := "duration"
				if durationSeen {
					prefix = "delay"
				}
				durationSeen = true
				if c, ok := timeClass(prefix, lower); ok {
					timing = append(timing, c)
				}
				continue
			}
			if c, ok := easingClass(part); ok {
				timing = append(timing, c)
				continue
			}
			props = append(props, lower)
		}
	}

	classes := []string{"transition-all"}
	if len(props) > 0 {
		classes = transitionPropertyClasses(props)
	}
	return dedupe(append(classes, timing...))
}
