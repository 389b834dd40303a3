package tailwind

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// colorPrefixes maps color-bearing properties to their utility prefix.
var colorPrefixes = map[string]string{
	"color":                 "text",
	"background-color":      "bg",
	"border-color":          "border",
	"border-top-color":      "border-t",
	"border-right-color":    "border-r",
	"border-bottom-color":   "border-b",
	"border-left-color":     "border-l",
	"border-inline-color":   "border-x",
	"border-block-color":    "border-y",
	"text-decoration-color": "decoration",
	"outline-color":         "outline",
	"fill":                  "fill",
	"stroke":                "stroke",
	"caret-color":           "caret",
	"accent-color":          "accent",
}

// namedColors maps CSS color keywords to the closest palette entry.
var namedColors = map[string]string{
	"transparent":  "transparent",
	"currentcolor": "current",
	"inherit":      "inherit",
	"black":        "black",
	"white":        "white",
	"red":          "red-500",
	"green":        "green-500",
	"blue":         "blue-500",
	"yellow":       "yellow-500",
	"orange":       "orange-500",
	"purple":       "purple-500",
	"pink":         "pink-500",
	"gray":         "gray-500",
	"grey":         "gray-500",
	"indigo":       "indigo-500",
	"cyan":         "cyan-500",
	"teal":         "teal-500",
	"lime":         "lime-500",
	"emerald":      "emerald-500",
	"sky":          "sky-500",
	"rose":         "rose-500",
	"fuchsia":      "fuchsia-500",
	"amber":        "amber-500",
	"violet":       "violet-500",
	"crimson":      "red-600",
	"darkred":      "red-800",
	"darkgreen":    "green-800",
	"darkblue":     "blue-800",
	"navy":         "blue-900",
	"maroon":       "red-900",
	"olive":        "yellow-600",
	"darkgray":     "gray-700",
	"darkgrey":     "gray-700",
	"lightgray":    "gray-300",
	"lightgrey":    "gray-300",
	"silver":       "gray-400",
	"gold":         "yellow-400",
	"coral":        "orange-400",
	"salmon":       "orange-300",
	"khaki":        "yellow-300",
	"plum":         "purple-400",
	"orchid":       "purple-300",
	"tan":          "yellow-200",
	"beige":        "yellow-100",
	"lavender":     "purple-200",
	"azure":        "blue-100",
	"ivory":        "yellow-50",
	"aqua":         "cyan-500",
	"magenta":      "fuchsia-500",
	"brown":        "amber-800",
}

var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch(", "color(", "color-mix(", "var("}

// colorSuffix resolves a CSS color to the part after the utility prefix:
// "red-500", "black" or "[#ff8800]".
func colorSuffix(value string) (string, bool) {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	if named, ok := namedColors[lower]; ok {
		return named, true
	}
	if strings.HasPrefix(lower, "#") {
		c, err := csscolorparser.Parse(lower)
		if err != nil {
			return "", false
		}
		if name, ok := blackOrWhite(c); ok {
			return name, true
		}
		return "[" + lower + "]", true
	}
	for _, fn := range colorFunctions {
		if strings.HasPrefix(lower, fn) {
			return "[" + strings.ReplaceAll(underscored(v), ",_", ",") + "]", true
		}
	}

	// Remaining CSS keywords (rebeccapurple, slategray, ...) resolve to hex.
	c, err := csscolorparser.Parse(lower)
	if err != nil {
		return "", false
	}
	if name, ok := blackOrWhite(c); ok {
		return name, true
	}
	return "[" + c.HexString() + "]", true
}

func blackOrWhite(c csscolorparser.Color) (string, bool) {
	r, g, b, a := c.RGBA255()
	switch {
	case a == 255 && r == 0 && g == 0 && b == 0:
		return "black", true
	case a == 255 && r == 255 && g == 255 && b == 255:
		return "white", true
	}
	return "", false
}

// isColor reports whether value parses as a color.
func isColor(value string) bool {
	_, ok := colorSuffix(value)
	return ok
}

func newColorMatcher() Matcher {
	return &matcher{
		name: "color",
		match: func(prop, value string) bool {
			if _, ok := colorPrefixes[prop]; !ok {
				return false
			}
			return isColor(value)
		},
		convert: func(prop, value string, _ Settings) []string {
			suffix, ok := colorSuffix(value)
			if !ok {
				return nil
			}
			return []string{colorPrefixes[prop] + "-" + suffix}
		},
	}
}
