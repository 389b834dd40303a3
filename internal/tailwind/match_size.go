package tailwind

import (
	"math"
	"strings"
)

var sizeKeywords = map[string]string{
	"auto":        "auto",
	"max-content": "max",
	"min-content": "min",
	"fit-content": "fit",
}

// viewportSizes holds the viewport units Tailwind names, per axis.
var viewportSizes = map[string]map[string]string{
	"w": {"100vw": "screen", "100dvw": "dvw", "100svw": "svw", "100lvw": "lvw"},
	"h": {"100vh": "screen", "100dvh": "dvh", "100svh": "svh", "100lvh": "lvh"},
}

var fifths = []fraction{{20, "1/5"}, {40, "2/5"}, {60, "3/5"}, {80, "4/5"}}

// maxWidths is the named max-width scale.
var maxWidths = map[string]string{
	"none":   "none",
	"320px":  "xs",
	"20rem":  "xs",
	"384px":  "sm",
	"24rem":  "sm",
	"448px":  "md",
	"28rem":  "md",
	"512px":  "lg",
	"32rem":  "lg",
	"576px":  "xl",
	"36rem":  "xl",
	"672px":  "2xl",
	"42rem":  "2xl",
	"768px":  "3xl",
	"48rem":  "3xl",
	"896px":  "4xl",
	"56rem":  "4xl",
	"1024px": "5xl",
	"64rem":  "5xl",
	"1152px": "6xl",
	"72rem":  "6xl",
	"1280px": "7xl",
	"80rem":  "7xl",
	"65ch":   "prose",
	"640px":  "screen-sm",
	"1536px": "screen-2xl",
}

func sizeFraction(pct float64) (string, bool) {
	if s, ok := fractionFor(pct); ok {
		return s, true
	}
	for _, f := range fifths {
		if math.Abs(f.Percent-pct) < 0.01 {
			return f.Name, true
		}
	}
	return "", false
}

// sizeSuffix converts a width or height value for the given axis ("w" or
// "h") to the part after the utility prefix.
func sizeSuffix(value, axis string) (string, bool) {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	if s, ok := sizeKeywords[lower]; ok {
		return s, true
	}
	if s, ok := viewportSizes[axis][lower]; ok {
		return s, true
	}
	switch lower {
	case "inherit", "initial", "unset", "revert":
		return "[" + lower + "]", true
	}
	if isCSSFunction(lower) {
		return "[" + underscored(v) + "]", true
	}

	l, ok := parseLength(lower)
	if !ok || l.Num < 0 {
		return "", false
	}
	switch l.Unit {
	case "":
		if s, ok := pxToStep(l.Num); ok {
			return s, true
		}
		return "[" + formatNumber(l.Num) + "px]", true
	case "px":
		if s, ok := pxToStep(l.Num); ok {
			return s, true
		}
	case "rem":
		if s, ok := remToStep(l.Num); ok {
			return s, true
		}
	case "%":
		if s, ok := sizeFraction(l.Num); ok {
			return s, true
		}
	}
	return "[" + lower + "]", true
}

// normalizeSize makes unitless sizes comparable with pixel sizes.
func normalizeSize(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if l, ok := parseLength(v); ok && l.Unit == "" {
		return formatNumber(l.Num) + "px"
	}
	return v
}

func isSizeProperty(prop string) bool {
	return prop == "width" || prop == "height"
}

// convertSizes converts the width and height declarations of a rule
// together. The returned slice is parallel to decls; a nil entry means the
// declaration could not be converted. When both axes resolve to the same
// value and the optimization is enabled, both entries hold one size-* class.
func convertSizes(decls []Declaration, s Settings) [][]string {
	out := make([][]string, len(decls))
	widthIdx, heightIdx := -1, -1
	var widthSuffix, heightSuffix string

	for i, d := range decls {
		axis := "w"
		if strings.EqualFold(strings.TrimSpace(d.Property), "height") {
			axis = "h"
		}
		suffix, ok := sizeSuffix(d.Value, axis)
		if !ok {
			continue
		}
		out[i] = []string{axis + "-" + suffix}
		if axis == "w" {
			widthIdx, widthSuffix = i, suffix
		} else {
			heightIdx, heightSuffix = i, suffix
		}
	}

	if !s.SizeOptimization || widthIdx < 0 || heightIdx < 0 {
		return out
	}
	if widthSuffix != heightSuffix || normalizeSize(decls[widthIdx].Value) != normalizeSize(decls[heightIdx].Value) {
		return out
	}
	joint := []string{"size-" + widthSuffix}
	out[widthIdx] = joint
	out[heightIdx] = joint
	return out
}

var minMaxPrefixes = map[string]string{
	"min-width":  "min-w",
	"min-height": "min-h",
	"max-width":  "max-w",
	"max-height": "max-h",
	// logical sizes
	"min-inline-size": "min-w",
	"max-inline-size": "max-w",
	"min-block-size":  "min-h",
	"max-block-size":  "max-h",
}

func newMinMaxSizeMatcher() Matcher {
	return &matcher{
		name: "min-max-size",
		match: func(prop, _ string) bool {
			_, ok := minMaxPrefixes[prop]
			return ok
		},
		convert: func(prop, value string, _ Settings) []string {
			prefix := minMaxPrefixes[prop]
			lower := strings.ToLower(strings.TrimSpace(value))
			if lower == "none" && strings.HasPrefix(prefix, "max-") {
				return []string{prefix + "-none"}
			}
			if prefix == "max-w" {
				if name, ok := maxWidths[lower]; ok {
					return []string{"max-w-" + name}
				}
			}
			axis := prefix[len(prefix)-1:]
			suffix, ok := sizeSuffix(value, axis)
			if !ok {
				return nil
			}
			return []string{prefix + "-" + suffix}
		},
	}
}
