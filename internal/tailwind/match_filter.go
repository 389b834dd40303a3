package tailwind

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	filterVarPat = regexp.MustCompile(`^var\(\s*(--[\w-]+)\s*\)$`)
	negCalcDeg   = regexp.MustCompile(`^calc\(\s*(-?[\d.]+)\s*deg\s*\*\s*-1\s*\)$`)
)

var blurSteps = map[string]string{
	"0":    "blur-none",
	"0px":  "blur-none",
	"4px":  "blur-sm",
	"8px":  "blur",
	"12px": "blur-md",
	"16px": "blur-lg",
	"24px": "blur-xl",
	"40px": "blur-2xl",
	"64px": "blur-3xl",
}

// filterSteps are the percentage steps with a dedicated class per function.
var filterSteps = map[string]map[float64]bool{
	"brightness": {0: true, 50: true, 75: true, 90: true, 95: true, 100: true, 105: true, 110: true, 125: true, 150: true, 200: true},
	"contrast":   {0: true, 50: true, 75: true, 100: true, 125: true, 150: true, 200: true},
	"saturate":   {0: true, 50: true, 100: true, 150: true, 200: true},
	"grayscale":  {0: true, 100: true},
	"invert":     {0: true, 100: true},
	"sepia":      {0: true, 100: true},
}

var hueRotateSteps = map[float64]bool{0: true, 15: true, 30: true, 60: true, 90: true, 180: true}

var dropShadows = map[string]string{
	"0 1px 1px rgb(0 0 0 / 0.05)": "drop-shadow-sm",
	"0 0 #0000":                   "drop-shadow-none",
}

// namedFilterVars maps theme variables to their named utilities.
var namedFilterVars = map[string]string{
	"blur":        "blur",
	"drop-shadow": "drop-shadow",
}

func newFilterMatcher() Matcher {
	return &matcher{
		name: "filter",
		match: func(prop, _ string) bool {
			return prop == "filter" || prop == "backdrop-filter" || prop == "-webkit-backdrop-filter"
		},
		convert: func(prop, value string, _ Settings) []string {
			return filterClasses(strings.TrimPrefix(prop, "-webkit-"), value)
		},
	}
}

// filterClasses converts each function of a filter list independently. Any
// unknown function turns the whole value into one arbitrary class.
func filterClasses(prop, value string) []string {
	v := strings.TrimSpace(value)
	if strings.EqualFold(v, "none") {
		return []string{prop + "-none"}
	}
	if m := filterVarPat.FindStringSubmatch(v); m != nil {
		return []string{prop + "-(" + m[1] + ")"}
	}

	base := ""
	if prop == "backdrop-filter" {
		base = "backdrop-"
	}

	var classes []string
	for _, fn := range splitSpaces(v) {
		c, ok := filterFunction(base, fn)
		if !ok {
			return []string{arbitrary(prop, v)}
		}
		classes = append(classes, c)
	}
	return classes
}

func filterFunction(base, fn string) (string, bool) {
	open := strings.IndexByte(fn, '(')
	if open <= 0 || !strings.HasSuffix(fn, ")") {
		return "", false
	}
	name := strings.ToLower(fn[:open])
	arg := strings.TrimSpace(fn[open+1 : len(fn)-1])
	lower := strings.ToLower(arg)

	if m := filterVarPat.FindStringSubmatch(arg); m != nil {
		if named, ok := namedFilterVars[name]; ok {
			if size, ok := strings.CutPrefix(m[1], "--"+named+"-"); ok {
				return base + named + "-" + size, true
			}
		}
		return base + name + "-(" + m[1] + ")", true
	}

	switch name {
	case "blur":
		if c, ok := blurSteps[lower]; ok {
			return base + c, true
		}
		return arbitrary(base+"blur", lower), true
	case "brightness", "contrast", "saturate", "grayscale", "invert", "sepia":
		return base + percentFilter(name, lower), true
	case "opacity":
		if step, ok := opacityStep(lower); ok {
			return base + "opacity-" + step, true
		}
		return arbitrary(base+"opacity", lower), true
	case "hue-rotate":
		return hueRotateClass(base, lower), true
	case "drop-shadow":
		if base != "" {
			return "", false
		}
		if c, ok := dropShadows[collapseSpaces(lower)]; ok {
			return c, true
		}
		return "drop-shadow-[" + shadowArbitrary(arg) + "]", true
	}
	return "", false
}

// percentFilter converts amounts like 50%, 0.5 or 1.25 for the functions in
// filterSteps. A full amount of grayscale, invert or sepia is the bare class.
func percentFilter(name, value string) string {
	l, ok := parseLength(value)
	if !ok || (l.Unit != "" && l.Unit != "%") || l.Num < 0 {
		return arbitrary(name, value)
	}
	pct := l.Num
	if l.Unit == "" {
		pct = round2(l.Num * 100)
	}
	if !filterSteps[name][pct] {
		return arbitrary(name, value)
	}
	switch name {
	case "grayscale", "invert", "sepia":
		if pct == 100 {
			return name
		}
	}
	return name + "-" + formatNumber(pct)
}

func hueRotateClass(base, value string) string {
	deg, ok := 0.0, false
	if m := negCalcDeg.FindStringSubmatch(value); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			deg, ok = -f, true
		}
	} else if l, parsed := parseLength(value); parsed && (l.Unit == "deg" || l.Num == 0) {
		deg, ok = l.Num, true
	}
	if !ok {
		return arbitrary(base+"hue-rotate", value)
	}

	neg := deg < 0
	if neg {
		deg = -deg
	}
	if hueRotateSteps[deg] {
		return withSign(neg, base+"hue-rotate-"+formatNumber(deg))
	}
	return withSign(neg, base+"hue-rotate-["+formatNumber(deg)+"deg]")
}
