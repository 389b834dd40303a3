package tailwind

import (
	"strconv"
	"strings"
)

var scaleSteps = map[float64]bool{0: true, 50: true, 75: true, 90: true, 95: true, 100: true, 105: true, 110: true, 125: true, 150: true}

var (
	rotateSteps = map[float64]bool{0: true, 1: true, 2: true, 3: true, 6: true, 12: true, 45: true, 90: true, 180: true}
	skewSteps   = map[float64]bool{0: true, 1: true, 2: true, 3: true, 6: true, 12: true}
)

var transformOrigins = map[string]string{
	"center":        "origin-center",
	"top":           "origin-top",
	"top right":     "origin-top-right",
	"right":         "origin-right",
	"bottom right":  "origin-bottom-right",
	"bottom":        "origin-bottom",
	"bottom left":   "origin-bottom-left",
	"left":          "origin-left",
	"top left":      "origin-top-left",
	"center center": "origin-center",
	"50% 50%":       "origin-center",
}

var transformProperties = map[string]bool{
	"transform":           true,
	"transform-origin":    true,
	"transform-style":     true,
	"translate":           true,
	"rotate":              true,
	"scale":               true,
	"perspective":         true,
	"perspective-origin":  true,
	"backface-visibility": true,
}

func newTransformMatcher() Matcher {
	return &matcher{
		name: "transform",
		match: func(prop, _ string) bool {
			return transformProperties[prop]
		},
		convert: func(prop, value string, _ Settings) []string {
			return transformClasses(prop, value)
		},
	}
}

func transformClasses(prop, value string) []string {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	switch prop {
	case "transform":
		if lower == "none" {
			return []string{"transform-none"}
		}
		var classes []string
		for _, fn := range splitSpaces(v) {
			classes = append(classes, transformFunction(fn)...)
		}
		return classes
	case "translate":
		if lower == "none" {
			return []string{"translate-none"}
		}
		parts := splitSpaces(lower)
		if len(parts) == 1 {
			parts = append(parts, parts[0])
		}
		if len(parts) != 2 {
			return []string{arbitraryProperty(prop, lower)}
		}
		return []string{translateClass("translate-x", parts[0]), translateClass("translate-y", parts[1])}
	case "rotate":
		if lower == "none" {
			return []string{"rotate-none"}
		}
		return []string{angleClass("rotate", lower, rotateSteps)}
	case "scale":
		if lower == "none" {
			return []string{"scale-none"}
		}
		parts := splitSpaces(lower)
		if len(parts) == 1 {
			return []string{scaleClass("scale", parts[0])}
		}
		if len(parts) == 2 {
			return []string{scaleClass("scale-x", parts[0]), scaleClass("scale-y", parts[1])}
		}
		return []string{arbitraryProperty(prop, lower)}
	case "transform-origin":
		if c, ok := transformOrigins[collapseSpaces(lower)]; ok {
			return []string{c}
		}
		return []string{arbitrary("origin", lower)}
	case "transform-style":
		switch lower {
		case "preserve-3d":
			return []string{"transform-3d"}
		case "flat":
			return []string{"transform-flat"}
		}
	case "backface-visibility":
		switch lower {
		case "hidden":
			return []string{"backface-hidden"}
		case "visible":
			return []string{"backface-visible"}
		}
	case "perspective":
		if lower == "none" {
			return []string{"perspective-none"}
		}
		return []string{arbitrary("perspective", lower)}
	case "perspective-origin":
		return []string{arbitrary("perspective-origin", lower)}
	}
	return nil
}

// transformFunction converts one function of a transform list.
func transformFunction(fn string) []string {
	open := strings.IndexByte(fn, '(')
	if open <= 0 || !strings.HasSuffix(fn, ")") {
		return []string{arbitrary("transform", fn)}
	}
	name := strings.ToLower(fn[:open])
	args := splitCommas(fn[open+1 : len(fn)-1])
	for i, a := range args {
		args[i] = strings.ToLower(a)
	}

	switch {
	case name == "translatex" && len(args) == 1:
		return []string{translateClass("translate-x", args[0])}
	case name == "translatey" && len(args) == 1:
		return []string{translateClass("translate-y", args[0])}
	case name == "translatez" && len(args) == 1:
		return []string{translateClass("translate-z", args[0])}
	case name == "translate" && len(args) == 1:
		return []string{translateClass("translate-x", args[0])}
	case name == "translate" && len(args) == 2:
		return []string{translateClass("translate-x", args[0]), translateClass("translate-y", args[1])}
	case name == "scalex" && len(args) == 1:
		return []string{scaleClass("scale-x", args[0])}
	case name == "scaley" && len(args) == 1:
		return []string{scaleClass("scale-y", args[0])}
	case name == "scale" && len(args) == 1:
		return []string{scaleClass("scale", args[0])}
	case name == "scale" && len(args) == 2:
		if args[0] == args[1] {
			return []string{scaleClass("scale", args[0])}
		}
		return []string{scaleClass("scale-x", args[0]), scaleClass("scale-y", args[1])}
	case (name == "rotate" || name == "rotatez") && len(args) == 1:
		return []string{angleClass("rotate", args[0], rotateSteps)}
	case name == "rotatex" && len(args) == 1:
		return []string{angleClass("rotate-x", args[0], nil)}
	case name == "rotatey" && len(args) == 1:
		return []string{angleClass("rotate-y", args[0], nil)}
	case name == "skewx" && len(args) == 1:
		return []string{angleClass("skew-x", args[0], skewSteps)}
	case name == "skewy" && len(args) == 1:
		return []string{angleClass("skew-y", args[0], skewSteps)}
	case name == "skew" && len(args) == 1:
		return []string{angleClass("skew-x", args[0], skewSteps)}
	case name == "skew" && len(args) == 2:
		return []string{angleClass("skew-x", args[0], skewSteps), angleClass("skew-y", args[1], skewSteps)}
	}
	return []string{arbitrary("transform", stripSpaces(fn))}
}

// withSign applies the leading-dash negative form to a class.
func withSign(neg bool, class string) string {
	if neg {
		return "-" + class
	}
	return class
}

// translateClass uses the spacing scale and fractions; other values are
// arbitrary.
func translateClass(prefix, value string) string {
	v := strings.TrimSpace(value)
	if isZero(v) {
		return prefix + "-0"
	}
	rest, neg := strings.CutPrefix(v, "-")
	l, ok := parseLength(rest)
	if !ok {
		return arbitrary(prefix, v)
	}
	switch l.Unit {
	case "px":
		if s, ok := pxToStep(l.Num); ok {
			return withSign(neg, prefix+"-"+s)
		}
	case "rem":
		if s, ok := remToStep(l.Num); ok {
			return withSign(neg, prefix+"-"+s)
		}
	case "%":
		if s, ok := fractionFor(l.Num); ok {
			return withSign(neg, prefix+"-"+s)
		}
	}
	return withSign(neg, prefix+"-["+rest+"]")
}

// scaleClass converts a scale factor or percentage to a scale step.
func scaleClass(prefix, value string) string {
	v := strings.TrimSpace(value)
	rest, neg := strings.CutPrefix(v, "-")
	l, ok := parseLength(rest)
	if !ok || (l.Unit != "" && l.Unit != "%") {
		return arbitrary(prefix, v)
	}
	pct := l.Num
	if l.Unit == "" {
		pct = round2(l.Num * 100)
	}
	if scaleSteps[pct] {
		return withSign(neg, prefix+"-"+formatNumber(pct))
	}
	if pct == float64(int(pct)) {
		return withSign(neg, prefix+"-["+strconv.Itoa(int(pct))+"%]")
	}
	return withSign(neg, prefix+"-["+rest+"]")
}

// angleClass converts a degree value using steps; nil steps always produce
// an arbitrary value.
func angleClass(prefix, value string, steps map[float64]bool) string {
	v := strings.TrimSpace(value)
	if isZero(v) {
		return prefix + "-0"
	}
	rest, neg := strings.CutPrefix(v, "-")
	if l, ok := parseLength(rest); ok && l.Unit == "deg" && steps[l.Num] {
		return withSign(neg, prefix+"-"+formatNumber(l.Num))
	}
	return withSign(neg, prefix+"-["+rest+"]")
}
