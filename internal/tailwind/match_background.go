package tailwind

import (
	"strings"
)

var (
	bgPositions = map[string]string{
		"left":          "bg-left",
		"right":         "bg-right",
		"top":           "bg-top",
		"bottom":        "bg-bottom",
		"center":        "bg-center",
		"center center": "bg-center",
		"left top":      "bg-left-top",
		"top left":      "bg-left-top",
		"left center":   "bg-left",
		"left bottom":   "bg-left-bottom",
		"bottom left":   "bg-left-bottom",
		"right top":     "bg-right-top",
		"top right":     "bg-right-top",
		"right center":  "bg-right",
		"right bottom":  "bg-right-bottom",
		"bottom right":  "bg-right-bottom",
		"center top":    "bg-top",
		"center bottom": "bg-bottom",
		"50% 50%":       "bg-center",
	}
	bgSizes = map[string]string{
		"auto":    "bg-auto",
		"cover":   "bg-cover",
		"contain": "bg-contain",
	}
	bgRepeats = map[string]string{
		"repeat":    "bg-repeat",
		"repeat-x":  "bg-repeat-x",
		"repeat-y":  "bg-repeat-y",
		"no-repeat": "bg-no-repeat",
		"space":     "bg-repeat-space",
		"round":     "bg-repeat-round",
	}
	bgAttachments = map[string]string{
		"fixed":  "bg-fixed",
		"local":  "bg-local",
		"scroll": "bg-scroll",
	}
	bgClips = map[string]string{
		"border-box":  "bg-clip-border",
		"padding-box": "bg-clip-padding",
		"content-box": "bg-clip-content",
		"text":        "bg-clip-text",
	}
	bgOrigins = map[string]string{
		"border-box":  "bg-origin-border",
		"padding-box": "bg-origin-padding",
		"content-box": "bg-origin-content",
	}
	bgBlendModes = map[string]bool{
		"normal": true, "multiply": true, "screen": true, "overlay": true, "darken": true,
		"lighten": true, "color-dodge": true, "color-burn": true, "hard-light": true,
		"soft-light": true, "difference": true, "exclusion": true, "hue": true,
		"saturation": true, "color": true, "luminosity": true,
	}
	bgPositionWords = map[string]bool{"left": true, "right": true, "top": true, "bottom": true, "center": true}
)

// gradientDirections maps linear-gradient directions to bg-gradient-to-*.
var gradientDirections = map[string]string{
	"to top":          "t",
	"to top right":    "tr",
	"to right top":    "tr",
	"to right":        "r",
	"to bottom right": "br",
	"to right bottom": "br",
	"to bottom":       "b",
	"to bottom left":  "bl",
	"to left bottom":  "bl",
	"to left":         "l",
	"to top left":     "tl",
	"to left top":     "tl",
	"0deg":            "t",
	"45deg":           "tr",
	"90deg":           "r",
	"135deg":          "br",
	"180deg":          "b",
	"225deg":          "bl",
	"270deg":          "l",
	"315deg":          "tl",
}

func newBackgroundMatcher() Matcher {
	return &matcher{
		name: "background",
		match: func(prop, _ string) bool {
			if prop == "-webkit-background-clip" {
				return true
			}
			return strings.HasPrefix(prop, "background") && prop != "background-color"
		},
		convert: func(prop, value string, _ Settings) []string {
			return backgroundClasses(strings.TrimPrefix(prop, "-webkit-"), value)
		},
	}
}

func backgroundClasses(prop, value string) []string {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	switch prop {
	case "background":
		return backgroundShorthand(v)
	case "background-image":
		return backgroundImageClasses(v)
	case "background-position":
		return []string{bgPositionClass(lower)}
	case "background-size":
		return []string{bgSizeClass(lower)}
	case "background-repeat":
		if c, ok := bgRepeats[lower]; ok {
			return []string{c}
		}
	case "background-attachment":
		if c, ok := bgAttachments[lower]; ok {
			return []string{c}
		}
	case "background-clip":
		if c, ok := bgClips[lower]; ok {
			return []string{c}
		}
	case "background-origin":
		if c, ok := bgOrigins[lower]; ok {
			return []string{c}
		}
	case "background-blend-mode":
		if bgBlendModes[lower] {
			return []string{"bg-blend-" + lower}
		}
	}
	return nil
}

func bgPositionClass(position string) string {
	p := collapseSpaces(position)
	if c, ok := bgPositions[p]; ok {
		return c
	}
	return "bg-[position:" + underscored(p) + "]"
}

func bgSizeClass(size string) string {
	s := collapseSpaces(size)
	if c, ok := bgSizes[s]; ok {
		return c
	}
	return "bg-[length:" + underscored(s) + "]"
}

func isImageToken(lower string) bool {
	return strings.HasPrefix(lower, "url(") || strings.HasPrefix(lower, "image-set(") ||
		(strings.Contains(lower, "gradient(") && isCSSFunction(lower))
}

func backgroundImageClasses(value string) []string {
	lower := strings.ToLower(value)
	if lower == "none" {
		return []string{"bg-none"}
	}
	if len(splitCommas(value)) > 1 {
		return []string{arbitrary("bg", value)}
	}
	if !isImageToken(lower) {
		return nil
	}
	if classes, ok := linearGradientClasses(value); ok {
		return classes
	}
	return []string{arbitrary("bg", value)}
}

// linearGradientClasses converts linear-gradient(direction, a, [b,] c) with
// plain color stops to bg-gradient-to-* with from/via/to stops.
func linearGradientClasses(value string) ([]string, bool) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "linear-gradient(") || !strings.HasSuffix(lower, ")") {
		return nil, false
	}
	args := splitCommas(value[len("linear-gradient(") : len(value)-1])
	if len(args) == 0 {
		return nil, false
	}

	dir := "b"
	if d, ok := gradientDirections[collapseSpaces(strings.ToLower(args[0]))]; ok {
		dir, args = d, args[1:]
	}
	if len(args) < 2 || len(args) > 3 {
		return nil, false
	}

	stops := make([]string, 0, len(args))
	for _, a := range args {
		if len(splitSpaces(a)) != 1 {
			return nil, false
		}
		suffix, ok := colorSuffix(a)
		if !ok {
			return nil, false
		}
		stops = append(stops, suffix)
	}

	classes := []string{"bg-gradient-to-" + dir, "from-" + stops[0]}
	if len(stops) == 3 {
		classes = append(classes, "via-"+stops[1])
	}
	return append(classes, "to-"+stops[len(stops)-1]), true
}

// backgroundShorthand splits `background` into its longhands. Multiple
// layers and unknown tokens fall back to one arbitrary class.
func backgroundShorthand(value string) []string {
	lower := strings.ToLower(value)
	if lower == "none" {
		return []string{"bg-none"}
	}
	if len(splitCommas(value)) > 1 {
		return []string{arbitrary("bg", value)}
	}

	var (
		color, position, size []string
		image, repeat, attach []string
		origin, clip          string
		afterSlash            bool
	)
	var tokens []string
	for _, tok := range splitSpaces(value) {
		if !strings.Contains(tok, "(") && strings.Contains(tok, "/") {
			before, after, _ := strings.Cut(tok, "/")
			for _, t := range []string{before, "/", after} {
				if t != "" {
					tokens = append(tokens, t)
				}
			}
			continue
		}
		tokens = append(tokens, tok)
	}

	for _, tok := range tokens {
		lt := strings.ToLower(tok)
		_, isLength := parseLength(lt)
		switch {
		case lt == "/":
			afterSlash = true
		case afterSlash && (bgSizes[lt] != "" || isLength):
			size = append(size, lt)
		case lt == "none":
			image = append(image, "bg-none")
		case isImageToken(lt):
			image = append(image, backgroundImageClasses(tok)...)
		case bgRepeats[lt] != "":
			repeat = append(repeat, bgRepeats[lt])
		case bgAttachments[lt] != "":
			attach = append(attach, bgAttachments[lt])
		case bgClips[lt] != "":
			if origin == "" && bgOrigins[lt] != "" {
				origin = bgOrigins[lt]
			} else {
				clip = bgClips[lt]
			}
		case bgPositionWords[lt] || isLength:
			position = append(position, lt)
		case bgSizes[lt] != "":
			size = append(size, lt)
		case isColor(tok):
			suffix, _ := colorSuffix(tok)
			color = append(color, "bg-"+suffix)
		default:
			return nil
		}
	}

	var classes []string
	classes = append(classes, color...)
	classes = append(classes, image...)
	if len(position) > 0 {
		classes = append(classes, bgPositionClass(strings.Join(position, " ")))
	}
	if len(size) > 0 {
		classes = append(classes, bgSizeClass(strings.Join(size, " ")))
	}
	classes = append(classes, repeat...)
	classes = append(classes, attach...)
	if origin != "" {
		classes = append(classes, origin)
	}
	if clip != "" {
		classes = append(classes, clip)
	}
	return classes
}
